package twitter

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// https://developer.twitter.com/en/docs/twitter-api/tweets/timelines/api-reference/get-users-id-tweets
type Tweet struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	AuthorID string `json:"author_id"`

	CreatedAt     time.Time      `json:"created_at"`
	PublicMetrics *PublicMetrics `json:"public_metrics"`
}

type PublicMetrics struct {
	RetweetCount int `json:"retweet_count"`
	LikeCount    int `json:"like_count"`
	ReplyCount   int `json:"reply_count"`
}

type Includes struct {
	Users []User `json:"users"`
}

// Timeline is the tagged shape of a user-tweets response. Data is absent when
// the account has no recent tweets.
type Timeline struct {
	Data     []Tweet   `json:"data"`
	Includes *Includes `json:"includes"`
}

// GetUserTweets fetches the user's most recent tweets with author metadata
// expanded in the same call.
func (c *Client) GetUserTweets(ctx context.Context, userID string, maxResults int) (*Timeline, error) {
	var timeline Timeline
	err := c.get(ctx, "/users/"+url.PathEscape(userID)+"/tweets", url.Values{
		"max_results":  []string{strconv.Itoa(maxResults)},
		"tweet.fields": []string{"created_at,public_metrics"},
		"user.fields":  []string{"profile_image_url,name,username"},
		"expansions":   []string{"author_id"},
	}, &timeline)
	if err != nil {
		return nil, err
	}
	return &timeline, nil
}
