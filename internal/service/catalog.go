package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/models"
)

// CatalogStore is the data-access interface CatalogService depends on.
type CatalogStore interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id int64) (*models.Service, error)
	CreateService(ctx context.Context, req models.CreateServiceRequest) (*models.Service, error)
	UpdateService(ctx context.Context, id int64, req models.UpdateServiceRequest) (*models.Service, error)
	DeleteService(ctx context.Context, id int64) error
}

// CatalogService wraps the service catalog store with the audit trail on
// mutations.
type CatalogService struct {
	store       CatalogStore
	auditWorker AuditEnqueuer
	log         *logrus.Logger
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(store CatalogStore, auditWorker AuditEnqueuer, log *logrus.Logger) *CatalogService {
	return &CatalogService{store: store, auditWorker: auditWorker, log: log}
}

// ListServices returns the full catalog (pass-through).
func (s *CatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.store.ListServices(ctx)
}

// GetService returns a single catalog service by ID (pass-through).
func (s *CatalogService) GetService(ctx context.Context, id int64) (*models.Service, error) {
	return s.store.GetService(ctx, id)
}

// CreateService creates a catalog service and records the submitted payload.
func (s *CatalogService) CreateService(ctx context.Context, actorID int64, req models.CreateServiceRequest) (*models.Service, error) {
	svc, err := s.store.CreateService(ctx, req)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actorID, models.AuditCreate, models.EntityServices, svc.ID, payloadMap(req))

	return svc, nil
}

// UpdateService partially updates a catalog service.
func (s *CatalogService) UpdateService(ctx context.Context, actorID, id int64, req models.UpdateServiceRequest) (*models.Service, error) {
	svc, err := s.store.UpdateService(ctx, id, req)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actorID, models.AuditUpdate, models.EntityServices, id, payloadMap(req))

	return svc, nil
}

// DeleteService removes a catalog service.
func (s *CatalogService) DeleteService(ctx context.Context, actorID, id int64) error {
	err := s.store.DeleteService(ctx, id)
	if err == nil {
		auditAsync(s.auditWorker, actorID, models.AuditDelete, models.EntityServices, id, nil)
	}
	return err
}
