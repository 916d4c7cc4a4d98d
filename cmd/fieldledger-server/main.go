// Command fieldledger-server runs the fieldledger HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/fieldledger/fieldledger/internal/api"
	"github.com/fieldledger/fieldledger/internal/auth"
	"github.com/fieldledger/fieldledger/internal/config"
	"github.com/fieldledger/fieldledger/internal/db"
	"github.com/fieldledger/fieldledger/internal/db/migrations"
	"github.com/fieldledger/fieldledger/internal/dbpool"
	"github.com/fieldledger/fieldledger/internal/security"
	"github.com/fieldledger/fieldledger/internal/service"
	"github.com/fieldledger/fieldledger/internal/store"
)

// version is set via ldflags at build time.
var version = "dev"

const shutdownTimeout = 15 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}

	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Error("server exited")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
		return err
	}

	if err := db.SeedAdmin(ctx, pool, log, cfg.AdminUsername, cfg.AdminPassword.Value()); err != nil {
		return err
	}

	base := store.Base{Pool: pool, Log: log}
	companyStore := store.NewCompanyStore(base)
	clientStore := store.NewClientStore(base)
	employeeStore := store.NewEmployeeStore(base)
	serviceStore := store.NewServiceStore(base)
	reasonStore := store.NewCoverageReasonStore(base)
	workLogStore := store.NewWorkLogStore(base)
	userStore := store.NewUserStore(base)
	auditStore := store.NewAuditStore(base)

	auditWorker := service.NewAuditWorker(auditStore, log, cfg.AuditQueueSize)

	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret.Value()), cfg.TokenTTL)
	guard := security.NewBruteForceGuard(ctx, log)

	deps := &api.RouterDeps{
		Log:             log,
		Pool:            pool,
		Auth:            service.NewAuthService(userStore, tokens, log),
		Users:           service.NewUserService(userStore, auditWorker, log),
		Companies:       service.NewCompanyService(companyStore, auditWorker, log),
		Clients:         service.NewClientService(clientStore, auditWorker, log),
		Employees:       service.NewEmployeeService(employeeStore, auditWorker, log),
		Catalog:         service.NewCatalogService(serviceStore, auditWorker, log),
		CoverageReasons: service.NewCoverageReasonService(reasonStore, auditWorker, log),
		WorkLogs:        service.NewWorkLogService(workLogStore, auditWorker, log),
		Audit:           service.NewAuditService(auditStore, log),
		Tokens:          tokens,
		Guard:           guard,
		CORSOrigins:     cfg.CORSOrigins,
		Version:         version,
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(ctx, deps),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		auditWorker.Run(gCtx)

		return nil
	})

	g.Go(func() error {
		log.WithFields(logrus.Fields{"addr": srv.Addr, "version": version}).Info("server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
