package flags

import (
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

var LogLevel = &cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "The level of the logs",
	Value:   "info",
	Validator: func(value string) error {
		if !slices.Contains(validLogLevels, value) {
			return fmt.Errorf("invalid log level: %s, allowed values are: %s", value, validLogLevels)
		}
		return nil
	},
	Sources: cli.EnvVars("LOG_LEVEL"),
}

var DatabaseURL = &cli.StringFlag{
	Name:    "database-url",
	Usage:   "Postgres connection string",
	Sources: cli.EnvVars("DATABASE_URL"),
}

var ListenAddr = &cli.StringFlag{
	Name:    "listen-addr",
	Usage:   "Address the API server listens on",
	Value:   ":8888",
	Sources: cli.EnvVars("LISTEN_ADDR"),
}

var TwitterBearerToken = &cli.StringFlag{
	Name:    "twitter-bearer-token",
	Usage:   "Bearer token for the Twitter API v2",
	Sources: cli.EnvVars("TWITTER_BEARER_TOKEN"),
}

var AccountHandle = &cli.StringFlag{
	Name:    "account-handle",
	Usage:   "Twitter handle whose recent tweets are cached",
	Sources: cli.EnvVars("ACCOUNT_HANDLE"),
}

var FetchCount = &cli.IntFlag{
	Name:    "fetch-count",
	Usage:   "How many recent tweets to request per sync",
	Value:   10,
	Sources: cli.EnvVars("FETCH_COUNT"),
}

var DefaultAuthorName = &cli.StringFlag{
	Name:    "default-author-name",
	Usage:   "Display name used when author metadata is missing, defaults to the account handle",
	Sources: cli.EnvVars("DEFAULT_AUTHOR_NAME"),
}

var DefaultAuthorAvatar = &cli.StringFlag{
	Name:    "default-author-avatar",
	Usage:   "Avatar URL used when author metadata is missing",
	Sources: cli.EnvVars("DEFAULT_AUTHOR_AVATAR"),
}

var SyncInterval = &cli.DurationFlag{
	Name:    "sync-interval",
	Usage:   "How often the resident runner re-syncs the cache, 0 disables periodic syncs",
	Value:   0,
	Sources: cli.EnvVars("SYNC_INTERVAL"),
}
