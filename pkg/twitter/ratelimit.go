package twitter

import (
	"strconv"
	"sync"
	"time"

	"resty.dev/v3"
)

const rateLimitResetHeader = "x-rate-limit-reset"

// rateLimitState is a single-slot memo of the last 429 the API returned.
// Calls made before the advertised reset fail fast instead of burning quota.
// Losing this state is harmless, it only means wasted calls.
type rateLimitState struct {
	mu      sync.Mutex
	resetAt time.Time
}

func (s *rateLimitState) check() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Now().Before(s.resetAt) {
		return ErrRateLimited
	}
	return nil
}

func (s *rateLimitState) observe(res *resty.Response) {
	reset, err := strconv.ParseInt(res.Header().Get(rateLimitResetHeader), 10, 64)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetAt = time.Unix(reset, 0)
}
