// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starford/daily/internal/dailylog"
	"github.com/starford/daily/internal/mcpserver"
	"github.com/starford/daily/internal/storage"
)

// App is the wired application shared by every command.
type App struct {
	Config  *Config
	Logger  *slog.Logger
	Dailies *dailylog.Service

	now func() time.Time
}

// New builds the application with the given options.
func New(opts ...Option) (*App, error) {
	app := &application{logOutput: os.Stderr, now: time.Now}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := newLogger(app.logOutput, cfg.App, app.verbose)
	slog.SetDefault(logger)

	dir, err := cfg.ResolvedDailiesDir()
	if err != nil {
		return nil, fmt.Errorf("resolve dailies dir: %w", err)
	}

	logger.Debug("Configuration loaded",
		slog.String("dailies_dir", dir),
		slog.Bool("skip_weekends", cfg.SkipWeekends),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure dailies directory exists.
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create dailies dir: %w", err)
	}

	store, err := storage.NewFS(dir)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	svc := dailylog.NewService(store, dailylog.WithSkipWeekends(func() bool {
		return cfg.SkipWeekends
	}))

	return &App{Config: cfg, Logger: logger, Dailies: svc, now: app.now}, nil
}

func newLogger(w io.Writer, cfg ApplicationConfig, verbose bool) *slog.Logger {
	level := cfg.LogLevel
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Today returns the current local date at midnight.
func (a *App) Today() time.Time {
	now := a.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// ServeMCP runs the MCP server over in/out until the input closes, ctx is
// cancelled, or the process receives SIGINT/SIGTERM.
func (a *App) ServeMCP(ctx context.Context, version string, in io.Reader, out io.Writer) error {
	logger := a.Logger
	srv := mcpserver.New(a.Dailies, version, mcpserver.WithClock(a.now))

	g, gCtx := errgroup.WithContext(ctx)
	serveCtx, stop := context.WithCancel(gCtx)
	defer stop()

	// Start MCP server.
	g.Go(func() error {
		defer stop()
		logger.Info("Starting MCP server", slog.String("dailies_dir", a.Dailies.Root()))
		if err := srv.Serve(serveCtx, in, out, slog.NewLogLogger(logger.Handler(), slog.LevelError)); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			stop()
		case <-serveCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("MCP server stopped", slog.String("error", err.Error()))
		return err
	}

	logger.Info("MCP server stopped")
	return nil
}
