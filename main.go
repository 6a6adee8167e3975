package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vickylk-dev/task-manager-tool/adapters/kv"
	"github.com/vickylk-dev/task-manager-tool/adapters/rest/handlers"
	"github.com/vickylk-dev/task-manager-tool/config"
	"github.com/vickylk-dev/task-manager-tool/core"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	log := mustMakeLogger(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	log.Info("starting task manager")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// local profile storage
	storage, err := kv.New(log, cfg.StoragePath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %v", err)
	}
	defer func(storage *kv.Store) {
		if err := storage.Close(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}(storage)

	if err := storage.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate storage: %v", err)
	}

	// stores; restore persisted state before any request is served,
	// so the route guard never decides against stale state
	sessions := core.NewSessionStore(log, storage, cfg.LoginDelay)
	sessions.Restore(ctx)

	tasks := core.NewTaskStore(log, storage, time.Now, core.NewID)
	tasks.Initialize(ctx)

	themes := core.NewThemeStore(log, storage)
	themes.Restore(ctx)

	deps := core.Deps{
		Sessions: sessions,
		Tasks:    tasks,
		Themes:   themes,
		Storage:  storage,
	}

	mux := http.NewServeMux()
	handlers.Register(mux, log, deps, cfg.HTTP.Timeout)

	server := http.Server{
		Addr:              cfg.HTTP.Address,
		ReadHeaderTimeout: cfg.HTTP.Timeout,
		Handler:           mux,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("task manager http server", "address", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped unexpectedly: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)

	return nil
}

func mustMakeLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
