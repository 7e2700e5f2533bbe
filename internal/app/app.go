// Package app wires configuration, infrastructure, and HTTP handlers into
// a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fgcagents/reserveroster/internal/config"
	"github.com/fgcagents/reserveroster/internal/httpserver"
	"github.com/fgcagents/reserveroster/internal/platform"
	"github.com/fgcagents/reserveroster/internal/scheduler"
	"github.com/fgcagents/reserveroster/internal/telemetry"
)

// Run is the main application entry point: it reads config, connects to
// infrastructure, and starts the HTTP server.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := telemetry.NewLogger(cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)

	logger.Info("starting reserveroster", "listen", cfg.ListenAddr())

	db, err := platform.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	rdb, err := platform.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Error("closing redis", "error", err)
		}
	}()

	if err := platform.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("migrations applied")

	metricsReg := telemetry.NewMetricsRegistry(telemetry.All()...)

	runStateTTL, err := time.ParseDuration(cfg.RunStateTTL)
	if err != nil {
		return fmt.Errorf("parsing run state ttl %q: %w", cfg.RunStateTTL, err)
	}
	runRegistry := scheduler.NewRunRegistry(rdb, runStateTTL)

	srv := httpserver.NewServer(cfg, logger, db, rdb, metricsReg)

	schedulerHandler := &httpserver.SchedulerHandler{DB: db, Registry: runRegistry, Cfg: cfg, Logger: logger}
	rosterHandler := &httpserver.RosterHandler{DB: db, Logger: logger}
	availabilityHandler := &httpserver.AvailabilityHandler{DB: db, Cfg: cfg, Logger: logger}

	schedulerHandler.Mount(srv.APIRouter)
	rosterHandler.Mount(srv.APIRouter)
	availabilityHandler.Mount(srv.APIRouter)

	httpSrv := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      srv,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("api server listening", "addr", cfg.ListenAddr())
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
