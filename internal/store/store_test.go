package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/dbpool"
	"github.com/fieldledger/fieldledger/internal/store"
)

// testEnv holds shared test infrastructure (single pool across all tests).
type testEnv struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

var sharedEnv *testEnv

func getTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if sharedEnv != nil {
		return sharedEnv
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := dbpool.NewPool(ctx, dbURL)
	if err != nil {
		t.Fatalf("connecting to test DB: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	sharedEnv = &testEnv{
		pool: pool,
		log:  log,
	}

	return sharedEnv
}

// setupTestBase creates a Base against the shared pool, wiping mutable
// tables after the test.
func setupTestBase(t *testing.T) store.Base {
	t.Helper()

	env := getTestEnv(t)

	t.Cleanup(func() {
		cleanCtx := context.Background()
		env.pool.Exec(cleanCtx, "DELETE FROM audit_logs")                               //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM work_logs")                                //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM companies")                                //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM clients")                                  //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM employees")                                //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM services")                                 //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM users WHERE username LIKE 'test-%'")       //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM coverage_reasons WHERE name LIKE 'test-%'") //nolint:errcheck // best-effort cleanup
	})

	return store.Base{Pool: env.pool, Log: env.log}
}
