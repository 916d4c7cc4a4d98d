package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/models"
)

// ClientStore is the data-access interface ClientService depends on.
type ClientStore interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id int64) (*models.Client, error)
	CreateClient(ctx context.Context, req models.CreateClientRequest) (*models.Client, error)
	UpdateClient(ctx context.Context, id int64, req models.UpdateClientRequest) (*models.Client, error)
	DeleteClient(ctx context.Context, id int64) error
}

// ClientService wraps ClientStore with the audit trail on mutations.
type ClientService struct {
	store       ClientStore
	auditWorker AuditEnqueuer
	log         *logrus.Logger
}

// NewClientService creates a ClientService.
func NewClientService(store ClientStore, auditWorker AuditEnqueuer, log *logrus.Logger) *ClientService {
	return &ClientService{store: store, auditWorker: auditWorker, log: log}
}

// ListClients returns all clients (pass-through).
func (s *ClientService) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.store.ListClients(ctx)
}

// GetClient returns a single client by ID (pass-through).
func (s *ClientService) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	return s.store.GetClient(ctx, id)
}

// CreateClient creates a client and records the submitted payload.
func (s *ClientService) CreateClient(ctx context.Context, actorID int64, req models.CreateClientRequest) (*models.Client, error) {
	client, err := s.store.CreateClient(ctx, req)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actorID, models.AuditCreate, models.EntityClients, client.ID, payloadMap(req))

	return client, nil
}

// UpdateClient partially updates a client, including full replacement of the
// posts list when submitted.
func (s *ClientService) UpdateClient(ctx context.Context, actorID, id int64, req models.UpdateClientRequest) (*models.Client, error) {
	client, err := s.store.UpdateClient(ctx, id, req)
	if err != nil {
		return nil, err
	}

	auditAsync(s.auditWorker, actorID, models.AuditUpdate, models.EntityClients, id, payloadMap(req))

	return client, nil
}

// DeleteClient removes a client.
func (s *ClientService) DeleteClient(ctx context.Context, actorID, id int64) error {
	err := s.store.DeleteClient(ctx, id)
	if err == nil {
		auditAsync(s.auditWorker, actorID, models.AuditDelete, models.EntityClients, id, nil)
	}
	return err
}
