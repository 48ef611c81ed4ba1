package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/KrishRally/Sportitup/internal/app"
	"github.com/KrishRally/Sportitup/internal/config"
	"github.com/KrishRally/Sportitup/internal/infra/storage/migrations"
	"github.com/KrishRally/Sportitup/pkg/logger"
	"github.com/KrishRally/Sportitup/pkg/metrics"
)

const flagConfig = "config"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sportitup: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	serve := func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServer(ctx, configPath)
	}

	root := &cobra.Command{
		Use:           "sportitup",
		Short:         "Turf booking backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	root.PersistentFlags().StringVar(&configPath, flagConfig, "config.toml", "path to config.toml (SPORTITUP_* env overrides it)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE:  serve,
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded postgres migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrations(cmd.Context(), configPath)
		},
	})

	return root
}

func setup(configPath string) (*config.Config, *logger.Logger, error) {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}

func runServer(ctx context.Context, configPath string) error {
	cfg, log, err := setup(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting Sportitup...")
	log.Info("Configuration loaded (file=%s, storage=%s, sessions=%s)",
		configPath, cfg.Storage.Driver, cfg.Auth.SessionStore)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	application, err := app.New(ctx, cfg, metricsCollector, log)
	if err != nil {
		log.Error("Failed to initialize application: %v", err)
		return err
	}
	defer application.Close()

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      application.Handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Ожидаем сигнал завершения или падение сервера
	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Server failed: %v", err)
			return err
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}

func runMigrations(ctx context.Context, configPath string) error {
	cfg, log, err := setup(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.Storage.Driver != config.DriverPostgres {
		log.Warn("storage.driver=%s: nothing to migrate", cfg.Storage.Driver)
		return nil
	}

	db, err := app.OpenDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Apply(ctx, db, log); err != nil {
		log.Error("Migration failed: %v", err)
		return err
	}
	log.Info("Migrations applied to %s", cfg.Database.DBName)
	return nil
}
