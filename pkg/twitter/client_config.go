package twitter

import (
	"time"

	"resty.dev/v3"
)

type Config struct {
	BaseURL     string
	BearerToken string

	TransportSettings *resty.TransportSettings

	ResponseMiddlewares []resty.ResponseMiddleware
}

var DefaultConfig = &Config{
	TransportSettings: &resty.TransportSettings{
		DialerTimeout:         2 * time.Second,
		DialerKeepAlive:       2 * time.Second,
		IdleConnTimeout:       2 * time.Second,
		TLSHandshakeTimeout:   2 * time.Second,
		ExpectContinueTimeout: 2 * time.Second,
		ResponseHeaderTimeout: 5 * time.Second,
	},
}
