package db

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fieldledger/fieldledger/internal/auth"
	"github.com/fieldledger/fieldledger/internal/dbpool"
	"github.com/fieldledger/fieldledger/internal/models"
)

// SeedAdmin creates the default administrator account when no admin user
// exists yet. The password comes from configuration; an empty password means
// seeding is skipped, which is the expected state once operators have created
// their own admin accounts.
func SeedAdmin(ctx context.Context, pool *dbpool.Pool, log *logrus.Logger, username, password string) error {
	var count int

	err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1`, models.RoleAdmin,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("counting admin users: %w", err)
	}

	if count > 0 {
		return nil
	}

	if password == "" {
		log.Warn("no admin user exists and ADMIN_PASSWORD is not set, skipping admin seed")

		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (username, password_hash, role, permissions)
		 VALUES ($1, $2, $3, '{}')
		 ON CONFLICT (username) DO NOTHING`,
		username, hash, models.RoleAdmin,
	)
	if err != nil {
		return fmt.Errorf("inserting admin user: %w", err)
	}

	log.WithField("username", username).Info("default admin user created")

	return nil
}
