package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/models"
)

// CoverageReasonStore is the data-access interface CoverageReasonService depends on.
type CoverageReasonStore interface {
	ListCoverageReasons(ctx context.Context) ([]models.CoverageReason, error)
	GetCoverageReason(ctx context.Context, id int64) (*models.CoverageReason, error)
	CreateCoverageReason(ctx context.Context, req models.CreateCoverageReasonRequest) (*models.CoverageReason, error)
	UpdateCoverageReason(ctx context.Context, id int64, req models.UpdateCoverageReasonRequest) (*models.CoverageReason, error)
	DeleteCoverageReason(ctx context.Context, id int64) error
}

// CoverageReasonService wraps CoverageReasonStore with the audit trail on
// mutations.
type CoverageReasonService struct {
	store       CoverageReasonStore
	auditWorker AuditEnqueuer
	log         *logrus.Logger
}

// NewCoverageReasonService creates a CoverageReasonService.
func NewCoverageReasonService(store CoverageReasonStore, auditWorker AuditEnqueuer, log *logrus.Logger) *CoverageReasonService {
	return &CoverageReasonService{store: store, auditWorker: auditWorker, log: log}
}

// ListCoverageReasons returns all coverage reasons (pass-through).
func (s *CoverageReasonService) ListCoverageReasons(ctx context.Context) ([]models.CoverageReason, error) {
	return s.store.ListCoverageReasons(ctx)
}

// GetCoverageReason returns a single coverage reason by ID (pass-through).
func (s *CoverageReasonService) GetCoverageReason(ctx context.Context, id int64) (*models.CoverageReason, error) {
	return s.store.GetCoverageReason(ctx, id)
}

// CreateCoverageReason creates a coverage reason and records the submitted payload.
func (s *CoverageReasonService) CreateCoverageReason(ctx context.Context, actorID int64, req models.CreateCoverageReasonRequest) (*models.CoverageReason, error) {
	reason, err := s.store.CreateCoverageReason(ctx, req)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actorID, models.AuditCreate, models.EntityCoverageReasons, reason.ID, payloadMap(req))

	return reason, nil
}

// UpdateCoverageReason renames a coverage reason.
func (s *CoverageReasonService) UpdateCoverageReason(ctx context.Context, actorID, id int64, req models.UpdateCoverageReasonRequest) (*models.CoverageReason, error) {
	reason, err := s.store.UpdateCoverageReason(ctx, id, req)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actorID, models.AuditUpdate, models.EntityCoverageReasons, id, payloadMap(req))

	return reason, nil
}

// DeleteCoverageReason removes a coverage reason.
func (s *CoverageReasonService) DeleteCoverageReason(ctx context.Context, actorID, id int64) error {
	err := s.store.DeleteCoverageReason(ctx, id)
	if err == nil {
		auditAsync(s.auditWorker, actorID, models.AuditDelete, models.EntityCoverageReasons, id, nil)
	}
	return err
}
