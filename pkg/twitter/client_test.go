package twitter_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tweetvault/pkg/twitter"
)

func newTestClient(t *testing.T, handler http.Handler) *twitter.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := twitter.NewClient(&twitter.Config{
		BaseURL:     server.URL,
		BearerToken: "test-token",
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() }) //nolint:errcheck

	return client
}

func TestNewClient_NoToken(t *testing.T) {
	t.Parallel()

	_, err := twitter.NewClient(&twitter.Config{})
	require.ErrorIs(t, err, twitter.ErrNoBearerToken)
}

func TestGetUserByUsername(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/by/username/someone", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.Equal(t, "profile_image_url", r.URL.Query().Get("user.fields"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":{"id":"42","name":"Someone","username":"someone","profile_image_url":"https://example.com/a.png"}}`)
	}))

	user, err := client.GetUserByUsername(t.Context(), "someone")
	require.NoError(t, err)
	require.Equal(t, "42", user.ID)
	require.Equal(t, "Someone", user.Name)
	require.Equal(t, "someone", user.Username)
	require.Equal(t, "https://example.com/a.png", user.ProfileImageURL)
}

func TestGetUserByUsername_NoData(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"errors":[{"title":"Not Found Error"}]}`)
	}))

	user, err := client.GetUserByUsername(t.Context(), "nobody")
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestGetUserTweets(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/42/tweets", r.URL.Path)
		require.Equal(t, "10", r.URL.Query().Get("max_results"))
		require.Equal(t, "author_id", r.URL.Query().Get("expansions"))
		require.Equal(t, "created_at,public_metrics", r.URL.Query().Get("tweet.fields"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"data": [
				{"id":"1","text":"hello","author_id":"42","created_at":"2026-08-27T12:00:00Z","public_metrics":{"retweet_count":1,"like_count":2,"reply_count":3}},
				{"id":"2","text":"world","author_id":"42","created_at":"2026-08-26T12:00:00Z"}
			],
			"includes": {"users": [{"id":"42","name":"Someone","username":"someone"}]}
		}`)
	}))

	timeline, err := client.GetUserTweets(t.Context(), "42", 10)
	require.NoError(t, err)
	require.Len(t, timeline.Data, 2)
	require.Equal(t, "hello", timeline.Data[0].Text)
	require.Equal(t, 2, timeline.Data[0].PublicMetrics.LikeCount)
	require.Nil(t, timeline.Data[1].PublicMetrics)
	require.Len(t, timeline.Includes.Users, 1)
}

func TestGetUserTweets_UpstreamError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))

	_, err := client.GetUserTweets(t.Context(), "42", 10)

	var apiErr *twitter.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Contains(t, apiErr.Body, "upstream exploded")
}

func TestRateLimitMemo(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.Header().Set("x-rate-limit-reset", fmt.Sprintf("%d", time.Now().Add(time.Hour).Unix()))
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := client.GetUserByUsername(t.Context(), "someone")

	var apiErr *twitter.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)

	// The memo makes the next call fail fast without hitting the API.
	_, err = client.GetUserByUsername(t.Context(), "someone")
	require.ErrorIs(t, err, twitter.ErrRateLimited)
	require.EqualValues(t, 1, requests.Load())
}
