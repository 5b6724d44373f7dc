package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httpapi "github.com/i474232898/skysense/internal/api/http"
	"github.com/i474232898/skysense/internal/app"
	"github.com/i474232898/skysense/internal/config"
	"github.com/i474232898/skysense/internal/logging"
	"github.com/i474232898/skysense/internal/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, "")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	service, _ := app.Build(cfg, logger)

	// Default city search on start-up, refreshed when configured.
	sched := scheduler.New(cfg.DefaultCity, cfg.RefreshInterval, service, logger)
	if err := sched.Start(); err != nil {
		logger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	fiberApp := httpapi.NewApp(logger)
	httpapi.RegisterRoutes(fiberApp, service, logger)
	httpapi.RegisterFallback(fiberApp)

	go func() {
		addr := ":" + cfg.Port
		logger.Info("starting server", zap.String("address", addr))
		if err := fiberApp.Listen(addr); err != nil {
			logger.Error("fiber server stopped", zap.Error(err))
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("error during shutdown", zap.Error(err))
	}
}
