package syncing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tweetvault/internal/config"
	"tweetvault/internal/core"
)

// ErrNoPosts reports an empty fetch. The store is left untouched so the
// previously cached active set stays servable.
var ErrNoPosts = errors.New("no posts found")

var (
	syncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tweetvault_sync_runs_total",
		Help: "The total number of sync runs by outcome",
	}, []string{"result"})
)

// Syncer runs the fetch-upsert-prune pipeline. Runs are serialized per
// process, overlapping store writes would still be safe but would waste
// Twitter API quota.
type Syncer struct {
	Logger  *slog.Logger
	Config  *config.Config
	Fetcher core.Fetcher
	Posts   core.PostRepository

	mu sync.Mutex
}

func (s *Syncer) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "syncing.Syncer")
	return nil
}

// Sync never degrades the store: a failed or empty fetch returns before any
// write, and a failed prune leaves the committed upserts standing.
func (s *Syncer) Sync(ctx context.Context) (core.SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.Fetcher.FetchRecentPosts(ctx)
	if err != nil {
		syncRuns.WithLabelValues("fetch_error").Inc()
		return core.SyncResult{}, fmt.Errorf("fetching recent posts: %w", err)
	}
	if len(posts) == 0 {
		syncRuns.WithLabelValues("empty").Inc()
		return core.SyncResult{}, ErrNoPosts
	}

	upserted, err := s.Posts.Upsert(ctx, posts...)
	if err != nil {
		syncRuns.WithLabelValues("store_error").Inc()
		return core.SyncResult{}, fmt.Errorf("caching posts: %w", err)
	}

	deactivated, err := s.Posts.Prune(ctx)
	if err != nil {
		// Upserts stand, the next run reconverges the active window.
		s.Logger.Error("pruning failed, stale posts stay active until the next sync", "error", err)
		deactivated = 0
	}

	syncRuns.WithLabelValues("ok").Inc()
	s.Logger.Info("sync completed", "cached", upserted, "deactivated", deactivated)

	return core.SyncResult{
		Cached:      int(upserted),
		Deactivated: deactivated,
		Message:     fmt.Sprintf("Successfully cached %d tweets from @%s", upserted, s.Config.AccountHandle),
	}, nil
}
