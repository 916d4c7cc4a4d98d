package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/models"
)

// WorkLogStore is the data-access interface WorkLogService depends on.
type WorkLogStore interface {
	ListWorkLogs(ctx context.Context, limit, offset int) ([]models.WorkLogEntry, bool, error)
	GetWorkLog(ctx context.Context, id int64) (*models.WorkLogEntry, error)
	CreateWorkLog(ctx context.Context, req models.CreateWorkLogRequest) (*models.WorkLog, error)
	UpdateWorkLog(ctx context.Context, id int64, req models.UpdateWorkLogRequest) (*models.WorkLog, error)
	DeleteWorkLog(ctx context.Context, id int64) error
}

// WorkLogService wraps WorkLogStore with the audit trail on mutations.
// Payment approval and reversion are plain status updates, so they flow
// through UpdateWorkLog like any other edit.
type WorkLogService struct {
	store       WorkLogStore
	auditWorker AuditEnqueuer
	log         *logrus.Logger
}

// NewWorkLogService creates a WorkLogService.
func NewWorkLogService(store WorkLogStore, auditWorker AuditEnqueuer, log *logrus.Logger) *WorkLogService {
	return &WorkLogService{store: store, auditWorker: auditWorker, log: log}
}

// ListWorkLogs returns a paginated denormalized listing (pass-through).
func (s *WorkLogService) ListWorkLogs(ctx context.Context, limit, offset int) ([]models.WorkLogEntry, bool, error) {
	return s.store.ListWorkLogs(ctx, limit, offset)
}

// GetWorkLog returns a single work log with resolved names (pass-through).
func (s *WorkLogService) GetWorkLog(ctx context.Context, id int64) (*models.WorkLogEntry, error) {
	return s.store.GetWorkLog(ctx, id)
}

// CreateWorkLog creates a work log and records the submitted payload.
func (s *WorkLogService) CreateWorkLog(ctx context.Context, actorID int64, req models.CreateWorkLogRequest) (*models.WorkLog, error) {
	workLog, err := s.store.CreateWorkLog(ctx, req)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actorID, models.AuditCreate, models.EntityWorkLogs, workLog.ID, payloadMap(req))

	return workLog, nil
}

// UpdateWorkLog partially updates a work log.
func (s *WorkLogService) UpdateWorkLog(ctx context.Context, actorID, id int64, req models.UpdateWorkLogRequest) (*models.WorkLog, error) {
	workLog, err := s.store.UpdateWorkLog(ctx, id, req)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actorID, models.AuditUpdate, models.EntityWorkLogs, id, payloadMap(req))

	return workLog, nil
}

// DeleteWorkLog removes a work log.
func (s *WorkLogService) DeleteWorkLog(ctx context.Context, actorID, id int64) error {
	err := s.store.DeleteWorkLog(ctx, id)
	if err == nil {
		auditAsync(s.auditWorker, actorID, models.AuditDelete, models.EntityWorkLogs, id, nil)
	}
	return err
}
