package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/models"
)

// CompanyStore is the data-access interface CompanyService depends on.
type CompanyStore interface {
	ListCompanies(ctx context.Context) ([]models.Company, error)
	GetCompany(ctx context.Context, id int64) (*models.Company, error)
	CreateCompany(ctx context.Context, req models.CreateCompanyRequest) (*models.Company, error)
	UpdateCompany(ctx context.Context, id int64, req models.UpdateCompanyRequest) (*models.Company, error)
	DeleteCompany(ctx context.Context, id int64) error
}

// CompanyService wraps CompanyStore with the audit trail on mutations.
type CompanyService struct {
	store       CompanyStore
	auditWorker AuditEnqueuer
	log         *logrus.Logger
}

// NewCompanyService creates a CompanyService.
func NewCompanyService(store CompanyStore, auditWorker AuditEnqueuer, log *logrus.Logger) *CompanyService {
	return &CompanyService{store: store, auditWorker: auditWorker, log: log}
}

// ListCompanies returns all companies (pass-through).
func (s *CompanyService) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return s.store.ListCompanies(ctx)
}

// GetCompany returns a single company by ID (pass-through).
func (s *CompanyService) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	return s.store.GetCompany(ctx, id)
}

// CreateCompany creates a company and records the submitted payload.
func (s *CompanyService) CreateCompany(ctx context.Context, actorID int64, req models.CreateCompanyRequest) (*models.Company, error) {
	company, err := s.store.CreateCompany(ctx, req)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actorID, models.AuditCreate, models.EntityCompanies, company.ID, payloadMap(req))

	return company, nil
}

// UpdateCompany partially updates a company. The audit entry records only
// the submitted fields, not the merged row.
func (s *CompanyService) UpdateCompany(ctx context.Context, actorID, id int64, req models.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.store.UpdateCompany(ctx, id, req)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actorID, models.AuditUpdate, models.EntityCompanies, id, payloadMap(req))

	return company, nil
}

// DeleteCompany removes a company.
func (s *CompanyService) DeleteCompany(ctx context.Context, actorID, id int64) error {
	err := s.store.DeleteCompany(ctx, id)
	if err == nil {
		auditAsync(s.auditWorker, actorID, models.AuditDelete, models.EntityCompanies, id, nil)
	}
	return err
}
