package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fieldledger/fieldledger/internal/models"
)

const coverageReasonColumns = "id, name, created_at"

// CoverageReasonStore handles coverage reason CRUD operations.
type CoverageReasonStore struct {
	Base
}

// NewCoverageReasonStore creates a new CoverageReasonStore.
func NewCoverageReasonStore(base Base) *CoverageReasonStore {
	return &CoverageReasonStore{Base: base}
}

func scanCoverageReason(scan func(...any) error) (*models.CoverageReason, error) {
	var cr models.CoverageReason
	if err := scan(&cr.ID, &cr.Name, &cr.CreatedAt); err != nil {
		return nil, err
	}

	return &cr, nil
}

// ListCoverageReasons returns all coverage reasons ordered by name.
func (s *CoverageReasonStore) ListCoverageReasons(ctx context.Context) ([]models.CoverageReason, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx, "SELECT "+coverageReasonColumns+" FROM coverage_reasons ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("querying coverage reasons: %w", err)
	}
	defer rows.Close()

	reasons := make([]models.CoverageReason, 0)

	for rows.Next() {
		cr, err := scanCoverageReason(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning coverage reason row: %w", err)
		}

		reasons = append(reasons, *cr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating coverage reason rows: %w", err)
	}

	return reasons, nil
}

// GetCoverageReason retrieves a single coverage reason by ID.
func (s *CoverageReasonStore) GetCoverageReason(ctx context.Context, id int64) (*models.CoverageReason, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, "SELECT "+coverageReasonColumns+" FROM coverage_reasons WHERE id = $1", id)

	cr, err := scanCoverageReason(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCoverageReasonNotFound
		}

		return nil, fmt.Errorf("scanning coverage reason: %w", err)
	}

	return cr, nil
}

// CreateCoverageReason inserts a new coverage reason. Names are unique.
func (s *CoverageReasonStore) CreateCoverageReason(ctx context.Context, req models.CreateCoverageReasonRequest) (*models.CoverageReason, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := "INSERT INTO coverage_reasons (name) VALUES ($1) RETURNING " + coverageReasonColumns

	row := s.Pool.QueryRow(ctx, query, req.Name)

	cr, err := scanCoverageReason(row.Scan)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning created coverage reason: %w", err)
	}

	return cr, nil
}

// UpdateCoverageReason renames a coverage reason and returns the result.
func (s *CoverageReasonStore) UpdateCoverageReason(ctx context.Context, id int64, req models.UpdateCoverageReasonRequest) (*models.CoverageReason, error) {
	if req.Name == nil {
		return s.GetCoverageReason(ctx, id)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := "UPDATE coverage_reasons SET name = $1 WHERE id = $2 RETURNING " + coverageReasonColumns

	row := s.Pool.QueryRow(ctx, query, *req.Name, id)

	cr, err := scanCoverageReason(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCoverageReasonNotFound
		}

		if isDuplicateKey(err) {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning updated coverage reason: %w", err)
	}

	return cr, nil
}

// DeleteCoverageReason removes a coverage reason by ID. Work logs that
// referenced it keep the dangling id.
func (s *CoverageReasonStore) DeleteCoverageReason(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, "DELETE FROM coverage_reasons WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("executing coverage reason delete: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrCoverageReasonNotFound
	}

	return nil
}
