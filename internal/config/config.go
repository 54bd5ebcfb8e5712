package config

import "time"

type Config struct {
	DatabaseURL string `flag:"database-url"`
	ListenAddr  string `flag:"listen-addr"`
	LogLevel    string `flag:"log-level"`

	TwitterBearerToken string `flag:"twitter-bearer-token"`
	AccountHandle      string `flag:"account-handle"`
	FetchCount         int    `flag:"fetch-count"`

	DefaultAuthorName   string `flag:"default-author-name"`
	DefaultAuthorAvatar string `flag:"default-author-avatar"`

	SyncInterval time.Duration `flag:"sync-interval"`
}

// FallbackAuthorName is used for posts whose author is missing from the
// expanded metadata set.
func (c *Config) FallbackAuthorName() string {
	if c.DefaultAuthorName != "" {
		return c.DefaultAuthorName
	}
	return c.AccountHandle
}
