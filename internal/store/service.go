package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/fieldledger/fieldledger/internal/models"
)

const serviceColumns = "id, name, description, default_value, created_at, updated_at"

// ServiceStore handles service catalog CRUD operations.
type ServiceStore struct {
	Base
}

// NewServiceStore creates a new ServiceStore.
func NewServiceStore(base Base) *ServiceStore {
	return &ServiceStore{Base: base}
}

func scanService(scan func(...any) error) (*models.Service, error) {
	var sv models.Service
	if err := scan(&sv.ID, &sv.Name, &sv.Description, &sv.DefaultValue, &sv.CreatedAt, &sv.UpdatedAt); err != nil {
		return nil, err
	}

	return &sv, nil
}

// ListServices returns the full service catalog ordered by name.
func (s *ServiceStore) ListServices(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx, "SELECT "+serviceColumns+" FROM services ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("querying services: %w", err)
	}
	defer rows.Close()

	services := make([]models.Service, 0)

	for rows.Next() {
		sv, err := scanService(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning service row: %w", err)
		}

		services = append(services, *sv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating service rows: %w", err)
	}

	return services, nil
}

// GetService retrieves a single catalog service by ID.
func (s *ServiceStore) GetService(ctx context.Context, id int64) (*models.Service, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, "SELECT "+serviceColumns+" FROM services WHERE id = $1", id)

	sv, err := scanService(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrServiceNotFound
		}

		return nil, fmt.Errorf("scanning service: %w", err)
	}

	return sv, nil
}

// CreateService inserts a new catalog service and returns the created record.
func (s *ServiceStore) CreateService(ctx context.Context, req models.CreateServiceRequest) (*models.Service, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO services (name, description, default_value)
		VALUES ($1, $2, $3)
		RETURNING ` + serviceColumns

	row := s.Pool.QueryRow(ctx, query, req.Name, req.Description, req.DefaultValue)

	sv, err := scanService(row.Scan)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning created service: %w", err)
	}

	return sv, nil
}

// UpdateService updates an existing catalog service with the provided fields
// and returns the merged result.
func (s *ServiceStore) UpdateService(ctx context.Context, id int64, req models.UpdateServiceRequest) (*models.Service, error) {
	setClauses := make([]string, 0, 3)
	args := make([]any, 0, 4)
	argIdx := 1

	add := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		add("name", *req.Name)
	}

	if req.Description != nil {
		add("description", *req.Description)
	}

	if req.DefaultValue != nil {
		add("default_value", *req.DefaultValue)
	}

	if len(setClauses) == 0 {
		return s.GetService(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = now()")

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(
		"UPDATE services SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), argIdx, serviceColumns,
	)
	args = append(args, id)

	row := s.Pool.QueryRow(ctx, query, args...)

	sv, err := scanService(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrServiceNotFound
		}

		return nil, fmt.Errorf("scanning updated service: %w", err)
	}

	return sv, nil
}

// DeleteService removes a catalog service by ID.
func (s *ServiceStore) DeleteService(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, "DELETE FROM services WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("executing service delete: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrServiceNotFound
	}

	return nil
}
