// Package internal wires configuration, the compiler and the delivery
// modes (one-shot, watch, serve) together.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/rich-27/sudoku-maker-arrow-generator/internal/api"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/arrowspec"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/compile"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/overlay"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/sse"
	"github.com/rich-27/sudoku-maker-arrow-generator/internal/watch"
)

// setup applies options, checks the configuration and installs the
// JSON logger shared by all run modes.
func setup(opts []Option) (*Config, *slog.Logger, error) {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, nil, fmt.Errorf("config is required")
	}
	cfg := app.config

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("input_path", cfg.Input.Path),
		slog.String("output_dir", cfg.Output.Dir),
		slog.String("log_level", cfg.App.LogLevel.String()))

	return cfg, logger, nil
}

// compileInput loads and compiles the specification file.
func compileInput(cfg *Config) (*compile.Result, []overlay.File, error) {
	specs, err := arrowspec.Load(cfg.Input.Path)
	if err != nil {
		return nil, nil, err
	}
	res, err := compile.Compile(specs)
	if err != nil {
		return nil, nil, err
	}
	return res, overlay.Files(res), nil
}

// writeOutput persists compiled overlay files under the output root.
func writeOutput(cfg *Config, files []overlay.File) error {
	w, err := overlay.NewWriter(cfg.Output.Dir)
	if err != nil {
		return err
	}
	return w.WriteAll(files)
}

// Run executes one compile pass: read the specification file, compile
// it, write the overlay layout.
func Run(ctx context.Context, opts ...Option) error {
	cfg, logger, err := setup(opts)
	if err != nil {
		return err
	}

	res, files, err := compileInput(cfg)
	if err != nil {
		return err
	}
	if err := writeOutput(cfg, files); err != nil {
		return err
	}

	logger.Info("Overlays written",
		slog.Int("groups", len(res.Groups)),
		slog.Int("shapes", res.Shapes()),
		slog.Int("files", len(files)),
		slog.String("output_dir", cfg.Output.Dir))
	return nil
}

// RunWatch compiles once, then recompiles on every specification
// change until the context is cancelled or a signal arrives. Compile
// failures are logged and the watcher keeps running, so a typo in the
// file does not stop the loop.
func RunWatch(ctx context.Context, opts ...Option) error {
	cfg, logger, err := setup(opts)
	if err != nil {
		return err
	}

	recompile := func() {
		res, files, err := compileInput(cfg)
		if err != nil {
			logger.Warn("Compile failed, keeping previous output", slog.String("error", err.Error()))
			return
		}
		if err := writeOutput(cfg, files); err != nil {
			logger.Warn("Write failed, keeping previous output", slog.String("error", err.Error()))
			return
		}
		logger.Info("Overlays written",
			slog.Int("groups", len(res.Groups)),
			slog.Int("files", len(files)))
	}
	recompile()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return watch.Watch(gCtx, cfg.Input.Path, cfg.Watch.Debounce(), logger, recompile)
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			return context.Canceled
		case <-gCtx.Done():
			return nil
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// RunServe runs the watch loop plus the preview HTTP server: overlay
// listings and documents over REST, compile outcomes over SSE.
func RunServe(ctx context.Context, opts ...Option) error {
	cfg, logger, err := setup(opts)
	if err != nil {
		return err
	}

	broker := sse.NewBroker()
	defer broker.Close()

	svc := api.NewService()

	recompile := func() {
		res, files, err := compileInput(cfg)
		if err != nil {
			logger.Warn("Compile failed, keeping previous output", slog.String("error", err.Error()))
			svc.Fail(err)
			broker.PublishFailed(err)
			return
		}
		if err := writeOutput(cfg, files); err != nil {
			logger.Warn("Write failed, keeping previous output", slog.String("error", err.Error()))
			svc.Fail(err)
			broker.PublishFailed(err)
			return
		}
		svc.Update(res, files)
		broker.PublishCompiled(len(res.Groups), len(files))
		logger.Info("Overlays written",
			slog.Int("groups", len(res.Groups)),
			slog.Int("files", len(files)))
	}
	recompile()

	apiRouter := api.NewRouter(svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

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

	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return watch.Watch(gCtx, cfg.Input.Path, cfg.Watch.Debounce(), logger, recompile)
	})

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

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
