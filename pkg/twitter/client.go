package twitter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"resty.dev/v3"
)

const DefaultBaseURL = "https://api.twitter.com/2"

var (
	ErrNoBearerToken = errors.New("twitter: bearer token is not configured")
	ErrRateLimited   = errors.New("twitter: rate limited")
)

// APIError is returned for any non-2xx response from the Twitter API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twitter: unexpected status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	client *resty.Client
	limits *rateLimitState
}

func NewClient(config *Config) (*Client, error) {
	if config.BearerToken == "" {
		return nil, ErrNoBearerToken
	}

	settings := config.TransportSettings
	if settings == nil {
		settings = DefaultConfig.TransportSettings
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.NewWithTransportSettings(settings).
		SetBaseURL(baseURL).
		SetAuthToken(config.BearerToken).
		SetTimeout(10 * time.Second)

	for _, middleware := range config.ResponseMiddlewares {
		client.AddResponseMiddleware(middleware)
	}

	return &Client{
		client: client,
		limits: &rateLimitState{},
	}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) r(ctx context.Context) *resty.Request {
	return c.client.R().WithContext(ctx)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	if err := c.limits.check(); err != nil {
		return err
	}

	res, err := c.r(ctx).
		SetQueryParamsFromValues(query).
		SetResult(result).
		Get(path)
	if err != nil {
		return err
	}

	if res.IsError() {
		if res.StatusCode() == http.StatusTooManyRequests {
			c.limits.observe(res)
		}
		return &APIError{StatusCode: res.StatusCode(), Body: res.String()}
	}
	return nil
}
