package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/fieldledger/fieldledger/internal/models"
)

const companyColumns = "id, name, cnpj, address, phone, email, created_at, updated_at"

// CompanyStore handles company CRUD operations.
type CompanyStore struct {
	Base
}

// NewCompanyStore creates a new CompanyStore.
func NewCompanyStore(base Base) *CompanyStore {
	return &CompanyStore{Base: base}
}

func scanCompany(scan func(...any) error) (*models.Company, error) {
	var c models.Company
	if err := scan(&c.ID, &c.Name, &c.CNPJ, &c.Address, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}

	return &c, nil
}

// ListCompanies returns all companies ordered by name.
func (s *CompanyStore) ListCompanies(ctx context.Context) ([]models.Company, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx, "SELECT "+companyColumns+" FROM companies ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("querying companies: %w", err)
	}
	defer rows.Close()

	companies := make([]models.Company, 0)

	for rows.Next() {
		c, err := scanCompany(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning company row: %w", err)
		}

		companies = append(companies, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating company rows: %w", err)
	}

	return companies, nil
}

// GetCompany retrieves a single company by ID.
func (s *CompanyStore) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, "SELECT "+companyColumns+" FROM companies WHERE id = $1", id)

	c, err := scanCompany(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCompanyNotFound
		}

		return nil, fmt.Errorf("scanning company: %w", err)
	}

	return c, nil
}

// CreateCompany inserts a new company and returns the created record.
func (s *CompanyStore) CreateCompany(ctx context.Context, req models.CreateCompanyRequest) (*models.Company, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO companies (name, cnpj, address, phone, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + companyColumns

	row := s.Pool.QueryRow(ctx, query, req.Name, req.CNPJ, req.Address, req.Phone, req.Email)

	c, err := scanCompany(row.Scan)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning created company: %w", err)
	}

	return c, nil
}

// UpdateCompany updates an existing company with the provided fields and
// returns the merged result.
func (s *CompanyStore) UpdateCompany(ctx context.Context, id int64, req models.UpdateCompanyRequest) (*models.Company, error) {
	setClauses := make([]string, 0, 5)
	args := make([]any, 0, 6)
	argIdx := 1

	add := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		add("name", *req.Name)
	}

	if req.CNPJ != nil {
		add("cnpj", *req.CNPJ)
	}

	if req.Address != nil {
		add("address", *req.Address)
	}

	if req.Phone != nil {
		add("phone", *req.Phone)
	}

	if req.Email != nil {
		add("email", *req.Email)
	}

	if len(setClauses) == 0 {
		return s.GetCompany(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = now()")

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(
		"UPDATE companies SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), argIdx, companyColumns,
	)
	args = append(args, id)

	row := s.Pool.QueryRow(ctx, query, args...)

	c, err := scanCompany(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCompanyNotFound
		}

		if isDuplicateKey(err) {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning updated company: %w", err)
	}

	return c, nil
}

// DeleteCompany removes a company by ID. Work logs referencing it keep their
// dangling id.
func (s *CompanyStore) DeleteCompany(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, "DELETE FROM companies WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("executing company delete: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrCompanyNotFound
	}

	return nil
}
