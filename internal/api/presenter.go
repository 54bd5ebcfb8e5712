package api

import (
	"fmt"
	"time"

	"tweetvault/internal/core"
)

// Tweet is the presentation-facing shape consumed by the blog page.
type Tweet struct {
	ID        string    `json:"id"`
	User      TweetUser `json:"user"`
	Content   string    `json:"content"`
	Timestamp string    `json:"timestamp"`
	Likes     int       `json:"likes"`
	Retweets  int       `json:"retweets"`
	Replies   int       `json:"replies"`
}

type TweetUser struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

func presentPost(post core.PostModel, now time.Time) Tweet {
	return Tweet{
		ID: post.TweetID,
		User: TweetUser{
			Name:     post.AuthorName,
			Username: post.AuthorUsername,
			Avatar:   post.AuthorProfileImage,
		},
		Content:   post.Content,
		Timestamp: relativeTime(post.CreatedAt, now),
		Likes:     post.LikeCount,
		Retweets:  post.RetweetCount,
		Replies:   post.ReplyCount,
	}
}

// relativeTime renders a created_at as "now", "<n>h" or "<n>d". Computed at
// read time, never stored.
func relativeTime(createdAt, now time.Time) string {
	hours := int(now.Sub(createdAt).Hours())

	switch {
	case hours < 1:
		return "now"
	case hours < 24:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dd", hours/24)
	}
}
