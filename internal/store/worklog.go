package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/fieldledger/fieldledger/internal/models"
)

const workLogColumns = `id, date, company_id, client_id, employee_id, service_id,
	value, description, post_name, status, origin_client_id, origin_post_name,
	coverage_reason_id, created_at, updated_at`

// workLogEntryQuery resolves display names at read time. References carry no
// FK constraints, so a deleted row simply joins to NULL.
const workLogEntryQuery = `SELECT
	w.id, w.date, w.company_id, w.client_id, w.employee_id, w.service_id,
	w.value, w.description, w.post_name, w.status, w.origin_client_id,
	w.origin_post_name, w.coverage_reason_id, w.created_at, w.updated_at,
	co.name, cl.name, em.name, sv.name, oc.name, cr.name
FROM work_logs w
LEFT JOIN companies co ON co.id = w.company_id
LEFT JOIN clients cl ON cl.id = w.client_id
LEFT JOIN employees em ON em.id = w.employee_id
LEFT JOIN services sv ON sv.id = w.service_id
LEFT JOIN clients oc ON oc.id = w.origin_client_id
LEFT JOIN coverage_reasons cr ON cr.id = w.coverage_reason_id`

// WorkLogStore handles work log CRUD and denormalized listings.
type WorkLogStore struct {
	Base
}

// NewWorkLogStore creates a new WorkLogStore.
func NewWorkLogStore(base Base) *WorkLogStore {
	return &WorkLogStore{Base: base}
}

func scanWorkLog(scan func(...any) error) (*models.WorkLog, error) {
	var w models.WorkLog
	err := scan(
		&w.ID, &w.Date, &w.CompanyID, &w.ClientID, &w.EmployeeID, &w.ServiceID,
		&w.Value, &w.Description, &w.PostName, &w.Status, &w.OriginClientID,
		&w.OriginPostName, &w.CoverageReasonID, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &w, nil
}

func scanWorkLogEntry(scan func(...any) error) (*models.WorkLogEntry, error) {
	var e models.WorkLogEntry
	err := scan(
		&e.ID, &e.Date, &e.CompanyID, &e.ClientID, &e.EmployeeID, &e.ServiceID,
		&e.Value, &e.Description, &e.PostName, &e.Status, &e.OriginClientID,
		&e.OriginPostName, &e.CoverageReasonID, &e.CreatedAt, &e.UpdatedAt,
		&e.CompanyName, &e.ClientName, &e.EmployeeName, &e.ServiceName,
		&e.OriginClientName, &e.CoverageReasonName,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

// ListWorkLogs returns work logs newest-first with resolved display names.
// Returns entries, hasMore flag, and any error.
func (s *WorkLogStore) ListWorkLogs(ctx context.Context, limit, offset int) ([]models.WorkLogEntry, bool, error) {
	limit, offset = clampPage(limit, offset)

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := workLogEntryQuery + " ORDER BY w.date DESC, w.id DESC LIMIT $1 OFFSET $2"

	rows, err := s.Pool.Query(ctx, query, limit+1, offset)
	if err != nil {
		return nil, false, fmt.Errorf("querying work logs: %w", err)
	}
	defer rows.Close()

	entries := make([]models.WorkLogEntry, 0, limit+1)

	for rows.Next() {
		e, err := scanWorkLogEntry(rows.Scan)
		if err != nil {
			return nil, false, fmt.Errorf("scanning work log row: %w", err)
		}

		entries = append(entries, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating work log rows: %w", err)
	}

	hasMore := len(entries) > limit
	if hasMore {
		entries = entries[:limit]
	}

	return entries, hasMore, nil
}

// GetWorkLog retrieves a single work log by ID with resolved display names.
func (s *WorkLogStore) GetWorkLog(ctx context.Context, id int64) (*models.WorkLogEntry, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, workLogEntryQuery+" WHERE w.id = $1", id)

	e, err := scanWorkLogEntry(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrWorkLogNotFound
		}

		return nil, fmt.Errorf("scanning work log: %w", err)
	}

	return e, nil
}

// CreateWorkLog inserts a new work log and returns the created record.
func (s *WorkLogStore) CreateWorkLog(ctx context.Context, req models.CreateWorkLogRequest) (*models.WorkLog, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO work_logs (date, company_id, client_id, employee_id, service_id,
		value, description, post_name, status, origin_client_id, origin_post_name, coverage_reason_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + workLogColumns

	row := s.Pool.QueryRow(ctx, query,
		req.Date, req.CompanyID, req.ClientID, req.EmployeeID, req.ServiceID,
		req.Value, req.Description, req.PostName, req.Status,
		req.OriginClientID, req.OriginPostName, req.CoverageReasonID,
	)

	w, err := scanWorkLog(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("scanning created work log: %w", err)
	}

	return w, nil
}

// buildWorkLogUpdate constructs the SET clause and arguments for UpdateWorkLog.
func buildWorkLogUpdate(req models.UpdateWorkLogRequest) (setClauses []string, args []any, nextArg int) {
	setClauses = make([]string, 0, 12)
	args = make([]any, 0, 13)
	argIdx := 1

	add := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.Date != nil {
		add("date", *req.Date)
	}

	if req.CompanyID != nil {
		add("company_id", *req.CompanyID)
	}

	if req.ClientID != nil {
		add("client_id", *req.ClientID)
	}

	if req.EmployeeID != nil {
		add("employee_id", *req.EmployeeID)
	}

	if req.ServiceID != nil {
		add("service_id", *req.ServiceID)
	}

	if req.Value != nil {
		add("value", *req.Value)
	}

	if req.Description != nil {
		add("description", *req.Description)
	}

	if req.PostName != nil {
		add("post_name", *req.PostName)
	}

	if req.Status != nil {
		add("status", *req.Status)
	}

	if req.OriginClientID != nil {
		add("origin_client_id", *req.OriginClientID)
	}

	if req.OriginPostName != nil {
		add("origin_post_name", *req.OriginPostName)
	}

	if req.CoverageReasonID != nil {
		add("coverage_reason_id", *req.CoverageReasonID)
	}

	return setClauses, args, argIdx
}

// UpdateWorkLog updates an existing work log with the provided fields and
// returns the merged result. Status transitions in either direction go
// through here as ordinary field updates.
func (s *WorkLogStore) UpdateWorkLog(ctx context.Context, id int64, req models.UpdateWorkLogRequest) (*models.WorkLog, error) {
	setClauses, args, argIdx := buildWorkLogUpdate(req)

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if len(setClauses) == 0 {
		e, err := s.GetWorkLog(ctx, id)
		if err != nil {
			return nil, err
		}

		return &e.WorkLog, nil
	}

	setClauses = append(setClauses, "updated_at = now()")

	query := fmt.Sprintf(
		"UPDATE work_logs SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), argIdx, workLogColumns,
	)
	args = append(args, id)

	row := s.Pool.QueryRow(ctx, query, args...)

	w, err := scanWorkLog(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrWorkLogNotFound
		}

		return nil, fmt.Errorf("scanning updated work log: %w", err)
	}

	return w, nil
}

// DeleteWorkLog removes a work log by ID.
func (s *WorkLogStore) DeleteWorkLog(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, "DELETE FROM work_logs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("executing work log delete: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrWorkLogNotFound
	}

	return nil
}
