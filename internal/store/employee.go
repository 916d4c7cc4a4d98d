package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/fieldledger/fieldledger/internal/models"
)

const employeeColumns = "id, name, cpf, role, phone, email, re, created_at, updated_at"

// EmployeeStore handles employee CRUD operations.
type EmployeeStore struct {
	Base
}

// NewEmployeeStore creates a new EmployeeStore.
func NewEmployeeStore(base Base) *EmployeeStore {
	return &EmployeeStore{Base: base}
}

func scanEmployee(scan func(...any) error) (*models.Employee, error) {
	var e models.Employee
	if err := scan(&e.ID, &e.Name, &e.CPF, &e.Role, &e.Phone, &e.Email, &e.RE, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}

	return &e, nil
}

// ListEmployees returns all employees ordered by name.
func (s *EmployeeStore) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx, "SELECT "+employeeColumns+" FROM employees ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("querying employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)

	for rows.Next() {
		e, err := scanEmployee(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning employee row: %w", err)
		}

		employees = append(employees, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employee rows: %w", err)
	}

	return employees, nil
}

// GetEmployee retrieves a single employee by ID.
func (s *EmployeeStore) GetEmployee(ctx context.Context, id int64) (*models.Employee, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, "SELECT "+employeeColumns+" FROM employees WHERE id = $1", id)

	e, err := scanEmployee(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrEmployeeNotFound
		}

		return nil, fmt.Errorf("scanning employee: %w", err)
	}

	return e, nil
}

// CreateEmployee inserts a new employee and returns the created record.
func (s *EmployeeStore) CreateEmployee(ctx context.Context, req models.CreateEmployeeRequest) (*models.Employee, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO employees (name, cpf, role, phone, email, re)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + employeeColumns

	row := s.Pool.QueryRow(ctx, query, req.Name, req.CPF, req.Role, req.Phone, req.Email, req.RE)

	e, err := scanEmployee(row.Scan)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning created employee: %w", err)
	}

	return e, nil
}

// UpdateEmployee updates an existing employee with the provided fields and
// returns the merged result.
func (s *EmployeeStore) UpdateEmployee(ctx context.Context, id int64, req models.UpdateEmployeeRequest) (*models.Employee, error) {
	setClauses := make([]string, 0, 6)
	args := make([]any, 0, 7)
	argIdx := 1

	add := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		add("name", *req.Name)
	}

	if req.CPF != nil {
		add("cpf", *req.CPF)
	}

	if req.Role != nil {
		add("role", *req.Role)
	}

	if req.Phone != nil {
		add("phone", *req.Phone)
	}

	if req.Email != nil {
		add("email", *req.Email)
	}

	if req.RE != nil {
		add("re", *req.RE)
	}

	if len(setClauses) == 0 {
		return s.GetEmployee(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = now()")

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(
		"UPDATE employees SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), argIdx, employeeColumns,
	)
	args = append(args, id)

	row := s.Pool.QueryRow(ctx, query, args...)

	e, err := scanEmployee(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrEmployeeNotFound
		}

		return nil, fmt.Errorf("scanning updated employee: %w", err)
	}

	return e, nil
}

// DeleteEmployee removes an employee by ID.
func (s *EmployeeStore) DeleteEmployee(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("executing employee delete: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrEmployeeNotFound
	}

	return nil
}
