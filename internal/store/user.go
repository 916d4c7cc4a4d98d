package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/fieldledger/fieldledger/internal/models"
)

const userColumns = "id, username, password_hash, role, permissions, created_at, updated_at"

// UserStore handles user account CRUD operations. Passwords arrive here
// already hashed; the store never sees plaintext secrets.
type UserStore struct {
	Base
}

// NewUserStore creates a new UserStore.
func NewUserStore(base Base) *UserStore {
	return &UserStore{Base: base}
}

// scanUser scans a user row. A malformed permissions payload logs a warning
// and leaves the zero value, which denies everything.
func (s *UserStore) scanUser(scan func(...any) error) (*models.User, error) {
	var u models.User
	var permsJSON []byte

	if err := scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &permsJSON, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}

	if len(permsJSON) > 0 {
		if err := json.Unmarshal(permsJSON, &u.Permissions); err != nil {
			s.Log.WithError(err).WithField("user_id", u.ID).Warn("failed to unmarshal user permissions")
			u.Permissions = models.Permissions{}
		}
	}

	return &u, nil
}

func marshalPermissions(p models.Permissions) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshaling permissions: %w", err)
	}

	return data, nil
}

// ListUsers returns all users ordered by username.
func (s *UserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY username, id")
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)

	for rows.Next() {
		u, err := s.scanUser(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}

		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}

	return users, nil
}

// GetUser retrieves a single user by ID.
func (s *UserStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)

	u, err := s.scanUser(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}

		return nil, fmt.Errorf("scanning user: %w", err)
	}

	return u, nil
}

// GetUserByUsername retrieves a single user by username (login path).
func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username)

	u, err := s.scanUser(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}

		return nil, fmt.Errorf("scanning user by username: %w", err)
	}

	return u, nil
}

// CreateUser inserts a new user. Usernames are unique.
func (s *UserStore) CreateUser(ctx context.Context, username, passwordHash, role string, perms models.Permissions) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	permsJSON, err := marshalPermissions(perms)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO users (username, password_hash, role, permissions)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	row := s.Pool.QueryRow(ctx, query, username, passwordHash, role, permsJSON)

	u, err := s.scanUser(row.Scan)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning created user: %w", err)
	}

	return u, nil
}

// UpdateUser updates an existing user with the provided fields and returns
// the merged result.
func (s *UserStore) UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	setClauses := make([]string, 0, 4)
	args := make([]any, 0, 5)
	argIdx := 1

	add := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if upd.Username != nil {
		add("username", *upd.Username)
	}

	if upd.PasswordHash != nil {
		add("password_hash", *upd.PasswordHash)
	}

	if upd.Role != nil {
		add("role", *upd.Role)
	}

	if upd.Permissions != nil {
		permsJSON, err := marshalPermissions(*upd.Permissions)
		if err != nil {
			return nil, err
		}

		add("permissions", permsJSON)
	}

	if len(setClauses) == 0 {
		return s.GetUser(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = now()")

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), argIdx, userColumns,
	)
	args = append(args, id)

	row := s.Pool.QueryRow(ctx, query, args...)

	u, err := s.scanUser(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}

		if isDuplicateKey(err) {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning updated user: %w", err)
	}

	return u, nil
}

// UpdatePassword replaces a user's password hash (self-service path).
func (s *UserStore) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx,
		"UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2",
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("executing password update: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}

	return nil
}

// DeleteUser removes a user by ID. Audit entries written by the user keep
// their actor id and render a null username afterwards.
func (s *UserStore) DeleteUser(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("executing user delete: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}

	return nil
}
