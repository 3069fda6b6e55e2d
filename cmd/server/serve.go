package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	specpkg "github.com/strategiq/scoreboard/api"
	"github.com/strategiq/scoreboard/internal/api"
	"github.com/strategiq/scoreboard/internal/auth"
	"github.com/strategiq/scoreboard/internal/database"
	"github.com/strategiq/scoreboard/internal/ledger"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(commandContext(cmd))
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return codeError(1, "connecting to database: %s", err)
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return codeError(1, "migrating schema: %s", err)
		}
		slog.Info("schema is up to date")
	}

	authService, err := auth.NewService(cfg.AdminKeyHash)
	if err != nil {
		return codeError(2, "configuring admin key: %s", err)
	}
	if !authService.Enabled() {
		slog.Warn("ADMIN_KEY_HASH not set; mutating endpoints are open")
	}

	svc := ledger.NewService(ledger.NewStores(db.Pool()), ledger.NewTransactor(db))

	router := api.NewRouter(api.RouterDeps{
		Ledger:         svc,
		DBPinger:       db,
		Auth:           authService,
		Version:        cfg.Version,
		ExportFilename: cfg.ExportFilename,
		OpenAPISpec:    specpkg.OpenAPISpec,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting scoreboard server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		return codeError(1, "server error: %s", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return codeError(1, "server forced to shutdown: %s", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
