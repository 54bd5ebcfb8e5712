package cmd

import (
	"context"
	"log/slog"

	"tweetvault/internal/cmd/flags"
	"tweetvault/internal/core"
	"tweetvault/internal/persistence"
	"tweetvault/internal/syncing"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var syncCmd = &cli.Command{
	Name:  "sync",
	Usage: "Run the fetch-upsert-prune pipeline once and exit",
	Flags: []cli.Flag{
		flags.DatabaseURL,
		flags.TwitterBearerToken,
		flags.AccountHandle,
		flags.FetchCount,
		flags.DefaultAuthorName,
		flags.DefaultAuthorAvatar,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			persistence.Provide(),
			pal.Provide[core.Fetcher](&syncing.Fetcher{}),
			pal.Provide[core.Syncer](&syncing.Syncer{}),
			pal.Provide(&syncOnce{}),
		)
	},
}

type syncOnce struct {
	Logger *slog.Logger
	Syncer core.Syncer
}

func (s *syncOnce) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "cmd.syncOnce")
	return nil
}

func (s *syncOnce) Run(ctx context.Context) error {
	result, err := s.Syncer.Sync(ctx)
	if err != nil {
		return err
	}

	s.Logger.Info("sync finished", "cached", result.Cached, "deactivated", result.Deactivated)
	return nil
}
