// Package main is the entry point for the sales dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/sales-dashboard/backend/config"
	"github.com/sales-dashboard/backend/internal/application/adapter"
	"github.com/sales-dashboard/backend/internal/infra/cache"
	"github.com/sales-dashboard/backend/internal/infra/dependency"
	"github.com/sales-dashboard/backend/internal/infra/logger"
	"github.com/sales-dashboard/backend/internal/integration/statestore"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()

	// Initialize structured logger
	slog.SetDefault(logger.New(os.Stdout, cfg.Log))

	slog.Info("Starting Sales Dashboard",
		"environment", cfg.Server.Environment,
		"host", cfg.Dashboard.Host,
		"port", cfg.Dashboard.Port,
		"record_service", cfg.Dashboard.RecordServiceURL,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Durable criteria live in Redis; without it the dashboard keeps them in memory
	var storage adapter.StateStorage
	var storageHealthChecker func() bool
	redisClient, err := cache.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, criteria will not survive a restart", "error", err)
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}()
		storage = statestore.NewRedisStorage(redisClient)
		storageHealthChecker = func() bool {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(pingCtx).Err() == nil
		}
	}

	injector, err := dependency.NewDashboardInjector(cfg, storage, storageHealthChecker)
	if err != nil {
		slog.Error("Failed to build dashboard", "error", err)
		os.Exit(1)
	}
	injector.Store.Load(ctx)

	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Dashboard.Host, cfg.Dashboard.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     engine,
		ReadTimeout: cfg.Server.ReadTimeout,
		// the stream endpoint holds its response open
		WriteTimeout: 0,
	}

	g, gctx := errgroup.WithContext(ctx)

	// open streams end with gctx so Shutdown does not wait on them
	srv.BaseContext = func(net.Listener) context.Context { return gctx }

	g.Go(func() error {
		return injector.Worker.Start(gctx)
	})

	g.Go(func() error {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("dashboard server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Dashboard stopped with error", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
