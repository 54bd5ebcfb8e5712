package cmd

import (
	"context"

	"tweetvault/internal/cmd/flags"
	"tweetvault/internal/core"
	"tweetvault/internal/persistence"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
)

var migrateCmd = &cli.Command{
	Name:  "migrate",
	Usage: "Manage the database schema",
	Flags: []cli.Flag{
		flags.DatabaseURL,
	},
	Commands: []*cli.Command{
		{
			Name:  "up",
			Usage: "Apply pending migrations",
			Action: func(ctx context.Context, c *cli.Command) error {
				return run(ctx, c,
					persistence.Provide(),
					pal.Provide[core.Migrator](&persistence.Migrator{}),
					pal.Provide(&persistence.MigrationUpRunner{}),
				)
			},
		},
		{
			Name:  "down",
			Usage: "Roll back the latest migration",
			Action: func(ctx context.Context, c *cli.Command) error {
				return run(ctx, c,
					persistence.Provide(),
					pal.Provide[core.Migrator](&persistence.Migrator{}),
					pal.Provide(&persistence.MigrationDownRunner{}),
				)
			},
		},
	},
}
