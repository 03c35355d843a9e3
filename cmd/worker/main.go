package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boatshow-server/internal/bootstrap"
	"boatshow-server/internal/config"
	"boatshow-server/internal/observability"
	"boatshow-server/internal/workers"
)

func main() {
	// Initialize logger
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := context.Background()

	logger.Info(ctx, "Starting notification worker...")

	cfg, err := config.Load()
	if err != nil {
		logger.Error(ctx, "failed to load configuration", err)
		os.Exit(1)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to initialize dependencies", err)
		os.Exit(1)
	}
	defer deps.Cleanup()

	dispatcher := workers.NewPoller(workers.PollerConfig{
		Interval:   cfg.Dispatcher.Interval,
		BatchSize:  cfg.Dispatcher.BatchSize,
		NumWorkers: cfg.Dispatcher.Workers,
		JobTimeout: time.Minute,
	}, deps.Dispatcher, deps.Dispatcher, logger)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		logger.Info(ctx, fmt.Sprintf("Dispatcher polling every %s", cfg.Dispatcher.Interval))
		done <- dispatcher.Start(runCtx)
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info(ctx, "Shutting down notification worker...")
		cancel()
		<-done
	case err := <-done:
		if err != nil {
			logger.Error(ctx, "dispatcher stopped with error", err)
		}
	}

	logger.Info(ctx, "Notification worker stopped")
}
