package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/auth"
	"github.com/fieldledger/fieldledger/internal/models"
)

// UserStore is the data-access interface UserService depends on.
type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, username, passwordHash, role string, perms models.Permissions) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	DeleteUser(ctx context.Context, id int64) error
}

// UserService wraps UserStore with password hashing and the audit trail.
// Plaintext secrets are hashed here and never reach the store or the
// audit details.
type UserService struct {
	store       UserStore
	auditWorker AuditEnqueuer
	log         *logrus.Logger
}

// NewUserService creates a UserService.
func NewUserService(store UserStore, auditWorker AuditEnqueuer, log *logrus.Logger) *UserService {
	return &UserService{store: store, auditWorker: auditWorker, log: log}
}

// ListUsers returns all users (pass-through).
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

// GetUser returns a single user by ID (pass-through).
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.store.GetUser(ctx, id)
}

// CreateUser hashes the password and creates the account. The audit entry
// never includes the secret.
func (s *UserService) CreateUser(ctx context.Context, actorID int64, req models.CreateUserRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.store.CreateUser(ctx, req.Username, hash, req.Role, req.Permissions)
	if err != nil {
		return nil, err
	}

	details := payloadMap(req)
	delete(details, "password")
	auditAsync(s.auditWorker, actorID, models.AuditCreate, models.EntityUsers, user.ID, details)

	return user, nil
}

// UpdateUser partially updates a user, hashing any supplied secret. An
// omitted password leaves the stored hash untouched.
func (s *UserService) UpdateUser(ctx context.Context, actorID, id int64, req models.UpdateUserRequest) (*models.User, error) {
	upd := models.UserUpdate{
		Username:    req.Username,
		Role:        req.Role,
		Permissions: req.Permissions,
	}

	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}

		upd.PasswordHash = &hash
	}

	user, err := s.store.UpdateUser(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	details := payloadMap(req)
	delete(details, "password")
	auditAsync(s.auditWorker, actorID, models.AuditUpdate, models.EntityUsers, id, details)

	return user, nil
}

// ChangePassword replaces the caller's own password and records an
// UPDATE_PASSWORD audit entry with no details.
func (s *UserService) ChangePassword(ctx context.Context, actorID int64, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	if err := s.store.UpdatePassword(ctx, actorID, hash); err != nil {
		return err
	}

	auditAsync(s.auditWorker, actorID, models.AuditUpdatePassword, models.EntityUsers, actorID, nil)

	return nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, actorID, id int64) error {
	err := s.store.DeleteUser(ctx, id)
	if err == nil {
		auditAsync(s.auditWorker, actorID, models.AuditDelete, models.EntityUsers, id, nil)
	}
	return err
}
