// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/lomkinju/qienn/internal/api"
	"github.com/lomkinju/qienn/internal/archive"
	"github.com/lomkinju/qienn/internal/mcpserver"
	"github.com/lomkinju/qienn/internal/snapshot"
	"github.com/lomkinju/qienn/internal/sse"
	"github.com/lomkinju/qienn/internal/tripservice"
)

// Run starts the HTTP application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("snapshot_path", cfg.Snapshot.Path),
		slog.String("archive_path", cfg.Archive.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	svc, db, slot, err := buildService(cfg, logger, tripservice.WithPublisher(broker))
	if err != nil {
		return err
	}
	defer db.Close()

	if err := svc.LoadInitial(ctx); err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	apiRouter := api.NewRouter(svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the snapshot slot for external edits and reload on change.
	g.Go(func() error {
		if err := snapshot.Watch(gCtx, slot, logger, func() { svc.Reload(gCtx) }); err != nil {
			logger.Warn("snapshot watcher stopped", slog.String("error", err.Error()))
		}
		return nil
	})

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// RunMCP starts the MCP stdio server over the same state as the HTTP app.
// Logs go to stderr so stdout stays clean for the protocol.
func RunMCP(ctx context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	svc, db, _, err := buildService(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := svc.LoadInitial(ctx); err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	logger.Info("MCP server starting on stdio")
	return mcpserver.New(svc).ServeStdio()
}

func buildService(cfg *Config, logger *slog.Logger, extra ...tripservice.Option) (*tripservice.Service, *archive.DB, *snapshot.Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Snapshot.Path), 0o755); err != nil {
		return nil, nil, nil, fmt.Errorf("create data dir: %w", err)
	}

	slot, err := snapshot.NewStore(cfg.Snapshot.Path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init snapshot store: %w", err)
	}

	db, err := archive.Open(cfg.Archive.Path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init archive: %w", err)
	}

	opts := append([]tripservice.Option{tripservice.WithArchive(db)}, extra...)
	svc := tripservice.NewService(slot, logger, opts...)
	return svc, db, slot, nil
}
