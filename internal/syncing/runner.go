package syncing

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tweetvault/internal/config"
	"tweetvault/internal/core"
)

// Runner keeps the cache warm by re-running the pipeline on a fixed interval.
// With a zero interval it stays idle and syncs only happen via POST /sync.
type Runner struct {
	Logger *slog.Logger
	Config *config.Config
	Syncer core.Syncer
}

func (r *Runner) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "syncing.Runner")
	return nil
}

func (r *Runner) Run(ctx context.Context) error {
	if r.Config.SyncInterval <= 0 {
		r.Logger.Info("periodic sync disabled")
		<-ctx.Done()
		return nil
	}

	r.Logger.Info("periodic sync enabled", "interval", r.Config.SyncInterval)

	ticker := time.NewTicker(r.Config.SyncInterval)
	defer ticker.Stop()

	r.sync(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.sync(ctx)
		}
	}
}

func (r *Runner) sync(ctx context.Context) {
	result, err := r.Syncer.Sync(ctx)
	if err != nil {
		if errors.Is(err, ErrNoPosts) {
			r.Logger.Warn("sync found no posts, keeping the current cache")
			return
		}
		r.Logger.Error("sync failed", "error", err)
		return
	}

	r.Logger.Info("periodic sync completed", "cached", result.Cached, "deactivated", result.Deactivated)
}
