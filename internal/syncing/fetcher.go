package syncing

import (
	"context"
	"fmt"
	"log/slog"

	"resty.dev/v3"

	"tweetvault/internal/config"
	"tweetvault/internal/core"
	"tweetvault/internal/metrics"
	"tweetvault/pkg/twitter"
)

// Fetcher pulls the configured account's recent tweets and normalizes them.
// Stateless between invocations apart from the client's rate-limit memo.
type Fetcher struct {
	Logger *slog.Logger
	Config *config.Config

	client *twitter.Client

	// baseURL overrides the Twitter API endpoint, tests only.
	baseURL string
}

func (f *Fetcher) Init(_ context.Context) error {
	f.Logger = f.Logger.With("component", "syncing.Fetcher")

	client, err := twitter.NewClient(&twitter.Config{
		BaseURL:             f.baseURL,
		BearerToken:         f.Config.TwitterBearerToken,
		ResponseMiddlewares: []resty.ResponseMiddleware{metrics.RestyLatency},
	})
	if err != nil {
		return err
	}

	f.client = client
	return nil
}

func (f *Fetcher) Shutdown(_ context.Context) error {
	return f.client.Close()
}

func (f *Fetcher) FetchRecentPosts(ctx context.Context) ([]core.ExternalPost, error) {
	user, err := f.client.GetUserByUsername(ctx, f.Config.AccountHandle)
	if err != nil {
		return nil, fmt.Errorf("resolving account @%s: %w", f.Config.AccountHandle, err)
	}
	if user == nil {
		f.Logger.Warn("account lookup returned no data", "handle", f.Config.AccountHandle)
		return nil, nil
	}

	timeline, err := f.client.GetUserTweets(ctx, user.ID, f.Config.FetchCount)
	if err != nil {
		return nil, fmt.Errorf("fetching tweets of @%s: %w", f.Config.AccountHandle, err)
	}

	return normalizeTimeline(timeline, f.fallbackAuthor()), nil
}

func (f *Fetcher) fallbackAuthor() twitter.User {
	return twitter.User{
		Name:            f.Config.FallbackAuthorName(),
		Username:        f.Config.AccountHandle,
		ProfileImageURL: f.Config.DefaultAuthorAvatar,
	}
}
