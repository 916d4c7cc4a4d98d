// Package store provides focused, single-concern data access stores
// for the fieldledger database.
//
// Each store owns one table and embeds shared helpers (Pool, logger)
// via the Base struct. Stores never import each other; shared logic
// lives in this file. Stores run single-statement queries directly on
// the pool; the only cross-table reads are the LEFT JOINs that resolve
// display names for work logs and audit entries.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/dbpool"
)

const defaultQueryTimeout = 30 * time.Second

// maxListLimit caps page sizes on paginated listings.
const maxListLimit = 500

// Base contains shared dependencies for all stores.
// Embed this in each store struct.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// isDuplicateKey reports whether err is a unique constraint violation.
func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// clampPage normalizes limit and offset for paginated listings.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}

	if limit > maxListLimit {
		limit = maxListLimit
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
