// Package worker runs the dashboard's periodic background jobs.
package worker

import (
	"context"
	"log/slog"
	"time"
)

// Refresher is the job the worker runs on every tick.
type Refresher interface {
	Execute(ctx context.Context) (int, error)
}

// RefresherFunc adapts a function to Refresher.
type RefresherFunc func(ctx context.Context) (int, error)

// Execute calls f.
func (f RefresherFunc) Execute(ctx context.Context) (int, error) {
	return f(ctx)
}

// RefreshWorker polls the Record Service and replaces the dashboard dataset.
type RefreshWorker struct {
	refresher Refresher
	interval  time.Duration
	timeout   time.Duration
}

// WorkerConfig holds configuration for the refresh worker.
type WorkerConfig struct {
	Interval time.Duration
	Timeout  time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		Interval: 15 * time.Second,
		Timeout:  10 * time.Second,
	}
}

// NewRefreshWorker creates a new refresh worker.
func NewRefreshWorker(refresher Refresher, config WorkerConfig) *RefreshWorker {
	defaults := DefaultWorkerConfig()
	if config.Interval <= 0 {
		config.Interval = defaults.Interval
	}
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}
	return &RefreshWorker{
		refresher: refresher,
		interval:  config.Interval,
		timeout:   config.Timeout,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *RefreshWorker) Start(ctx context.Context) error {
	slog.Info("Refresh worker started", "interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Fetch immediately on start, then on ticker
	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Refresh worker shutting down")
			return nil
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

// RefreshNow runs one refresh immediately.
func (w *RefreshWorker) RefreshNow(ctx context.Context) {
	w.refresh(ctx)
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	fetchCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	count, err := w.refresher.Execute(fetchCtx)
	if err != nil {
		// the use case already logged and kept the previous set
		return
	}
	slog.Debug("Refresh completed", "count", count)
}
