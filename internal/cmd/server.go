package cmd

import (
	"context"

	"tweetvault/internal/api"
	"tweetvault/internal/cmd/flags"
	"tweetvault/internal/core"
	"tweetvault/internal/metrics"
	"tweetvault/internal/persistence"
	"tweetvault/internal/syncing"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var serverCmd = &cli.Command{
	Name:  "server",
	Usage: "Run the API server, optionally re-syncing the cache on an interval",
	Flags: []cli.Flag{
		flags.DatabaseURL,
		flags.ListenAddr,
		flags.TwitterBearerToken,
		flags.AccountHandle,
		flags.FetchCount,
		flags.DefaultAuthorName,
		flags.DefaultAuthorAvatar,
		flags.SyncInterval,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			persistence.Provide(),
			pal.Provide[core.Fetcher](&syncing.Fetcher{}),
			pal.Provide[core.Syncer](&syncing.Syncer{}),
			pal.Provide(&syncing.Runner{}),
			pal.Provide(&metrics.Collector{}),
			pal.Provide(&api.Server{}),
		)
	},
}
