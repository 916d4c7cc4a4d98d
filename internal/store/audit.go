package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fieldledger/fieldledger/internal/models"
)

// AuditStore provides data access for the append-only audit_logs table.
type AuditStore struct {
	Base
}

// NewAuditStore creates an AuditStore.
func NewAuditStore(base Base) *AuditStore {
	return &AuditStore{Base: base}
}

// RecordAudit inserts an audit log entry. Called from the audit worker only.
func (s *AuditStore) RecordAudit(
	ctx context.Context,
	userID int64, action, entity string, entityID int64,
	details map[string]any,
) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var detailsJSON []byte
	if details != nil {
		var err error

		detailsJSON, err = json.Marshal(details)
		if err != nil {
			return fmt.Errorf("marshaling audit details: %w", err)
		}
	}

	_, err := s.Pool.Exec(ctx, `
		INSERT INTO audit_logs (user_id, action, entity, entity_id, details)
		VALUES ($1, $2, $3, $4, $5)`,
		userID, action, entity, entityID, detailsJSON,
	)
	if err != nil {
		return fmt.Errorf("inserting audit entry: %w", err)
	}

	return nil
}

// buildAuditFilter builds the WHERE clause and args from AuditListOpts.
func buildAuditFilter(opts models.AuditListOpts) (where string, args []any, nextArg int) {
	var conditions []string
	argIdx := 1

	if opts.Entity != "" {
		conditions = append(conditions, "a.entity = $"+strconv.Itoa(argIdx))
		args = append(args, opts.Entity)
		argIdx++
	}

	if opts.Action != "" {
		conditions = append(conditions, "a.action = $"+strconv.Itoa(argIdx))
		args = append(args, opts.Action)
		argIdx++
	}

	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	return where, args, argIdx
}

// ListAudit returns audit entries newest-first, joined with the acting
// username (null when that user was deleted). Returns entries, hasMore
// flag, and any error.
func (s *AuditStore) ListAudit(ctx context.Context, opts models.AuditListOpts) ([]models.AuditEntry, bool, error) {
	limit, offset := clampPage(opts.Limit, opts.Offset)

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	where, args, argIdx := buildAuditFilter(opts)

	query := fmt.Sprintf(`SELECT
			a.id, a.user_id, u.username, a.action, a.entity, a.entity_id, a.details, a.created_at
		FROM audit_logs a
		LEFT JOIN users u ON u.id = a.user_id
		%s ORDER BY a.created_at DESC, a.id DESC LIMIT $%d OFFSET $%d`,
		where, argIdx, argIdx+1,
	)
	args = append(args, limit+1, offset)

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditEntry

	for rows.Next() {
		var e models.AuditEntry
		var detailsJSON []byte

		if err := rows.Scan(&e.ID, &e.UserID, &e.Username, &e.Action, &e.Entity, &e.EntityID, &detailsJSON, &e.CreatedAt); err != nil {
			return nil, false, fmt.Errorf("scanning audit entry: %w", err)
		}

		if detailsJSON != nil {
			if err := json.Unmarshal(detailsJSON, &e.Details); err != nil {
				s.Log.WithError(err).Warn("failed to unmarshal audit details")
			}
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating audit rows: %w", err)
	}

	hasMore := len(entries) > limit
	if hasMore {
		entries = entries[:limit]
	}

	return entries, hasMore, nil
}
