package metrics

import (
	"context"
	"log/slog"
	"time"

	"tweetvault/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tableCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tweetvault_posts_estimated_count",
		Help: "Estimated record count of the posts table.",
	})

	activeCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tweetvault_posts_active_count",
		Help: "Number of posts currently in the active window.",
	})
)

type Collector struct {
	Logger *slog.Logger
	DB     core.DB
	Posts  core.PostRepository
}

func (c *Collector) Init(_ context.Context) error {
	c.Logger = c.Logger.With("component", "metrics.Collector")
	return nil
}

func (c *Collector) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := c.collect(ctx); err != nil {
				c.Logger.Error("failed to collect metrics", "error", err)
			}
		}
	}
}

func (c *Collector) collect(ctx context.Context) error {
	estimated, err := c.DB.EstimatedCount(core.PostModel{}.TableName())
	if err != nil {
		return err
	}
	tableCount.Set(float64(estimated))

	active, err := c.Posts.CountActive(ctx)
	if err != nil {
		return err
	}
	activeCount.Set(float64(active))

	return nil
}
