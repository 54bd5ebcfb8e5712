package syncing

import (
	"github.com/samber/lo"

	"tweetvault/internal/core"
	"tweetvault/pkg/twitter"
)

// normalizeTimeline flattens a timeline response into ExternalPost records.
// Authors are resolved from the expanded user set, a missing author falls back
// to the configured default identity instead of failing the batch. The API's
// ordering is preserved.
func normalizeTimeline(timeline *twitter.Timeline, fallback twitter.User) []core.ExternalPost {
	if timeline == nil || len(timeline.Data) == 0 {
		return nil
	}

	var users map[string]twitter.User
	if timeline.Includes != nil {
		users = lo.KeyBy(timeline.Includes.Users, func(user twitter.User) string {
			return user.ID
		})
	}

	return lo.Map(timeline.Data, func(tweet twitter.Tweet, _ int) core.ExternalPost {
		author, ok := users[tweet.AuthorID]
		if !ok {
			author = fallback
		}

		metrics := tweet.PublicMetrics
		if metrics == nil {
			metrics = &twitter.PublicMetrics{}
		}

		return core.ExternalPost{
			TweetID:            tweet.ID,
			Content:            tweet.Text,
			AuthorName:         author.Name,
			AuthorUsername:     author.Username,
			AuthorProfileImage: author.ProfileImageURL,
			CreatedAt:          tweet.CreatedAt,
			MediaURLs:          []string{},
			RetweetCount:       metrics.RetweetCount,
			LikeCount:          metrics.LikeCount,
			ReplyCount:         metrics.ReplyCount,
		}
	})
}
