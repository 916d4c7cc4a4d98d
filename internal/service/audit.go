package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/models"
)

// AuditQueryStore is the data-access interface AuditService depends on.
type AuditQueryStore interface {
	ListAudit(ctx context.Context, opts models.AuditListOpts) ([]models.AuditEntry, bool, error)
}

// AuditService exposes read access to the audit trail. Writes go through
// the AuditWorker only; there is no API to mutate recorded entries.
type AuditService struct {
	store AuditQueryStore
	log   *logrus.Logger
}

// NewAuditService creates an AuditService.
func NewAuditService(store AuditQueryStore, log *logrus.Logger) *AuditService {
	return &AuditService{store: store, log: log}
}

// ListAudit returns audit entries matching the given filters (pass-through).
func (s *AuditService) ListAudit(ctx context.Context, opts models.AuditListOpts) ([]models.AuditEntry, bool, error) {
	return s.store.ListAudit(ctx, opts)
}
