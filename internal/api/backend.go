package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"tweetvault/internal/core"
	"tweetvault/internal/syncing"
)

// staleAfter is how old the newest cached_at may get before GET /posts starts
// carrying a staleness warning.
const staleAfter = time.Hour

type syncResponse struct {
	Success bool   `json:"success"`
	Cached  int    `json:"cached,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type postsMeta struct {
	Count       int       `json:"count"`
	CacheAge    string    `json:"cacheAge"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type postsResponse struct {
	Tweets  []Tweet    `json:"tweets"`
	Source  string     `json:"source,omitempty"`
	Warning string     `json:"warning,omitempty"`
	Meta    *postsMeta `json:"meta,omitempty"`
	Error   string     `json:"error,omitempty"`
	Message string     `json:"message,omitempty"`
}

type Backend struct {
	Logger *slog.Logger

	Syncer    core.Syncer
	PostsRepo core.PostRepository
}

func (b *Backend) Init(_ context.Context) error {
	b.Logger = b.Logger.With("component", "api.Backend")
	return nil
}

func (b *Backend) Routes(r chi.Router) {
	r.Post("/sync", b.Sync)
	r.Get("/posts", b.ListPosts)
	r.Get("/healthz", b.Health)
}

func (b *Backend) Sync(w http.ResponseWriter, r *http.Request) {
	result, err := b.Syncer.Sync(r.Context())

	switch {
	case errors.Is(err, syncing.ErrNoPosts):
		writeJSON(w, http.StatusNotFound, syncResponse{
			Success: false,
			Error:   "no posts found",
		})
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, syncResponse{
			Success: false,
			Error:   err.Error(),
		})
	default:
		writeJSON(w, http.StatusOK, syncResponse{
			Success: true,
			Cached:  result.Cached,
			Message: result.Message,
		})
	}
}

func (b *Backend) ListPosts(w http.ResponseWriter, r *http.Request) {
	cached, err := b.PostsRepo.ListActive(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, postsResponse{
			Tweets:  []Tweet{},
			Error:   "database query failed",
			Message: "Unable to fetch posts from the cache",
		})
		return
	}

	// Never fabricate posts, an empty cache is reported as such.
	if len(cached) == 0 {
		writeJSON(w, http.StatusNotFound, postsResponse{
			Tweets:  []Tweet{},
			Error:   "no posts available",
			Message: "No posts cached yet, run a sync first",
		})
		return
	}

	now := time.Now()

	tweets := lo.Map(cached, func(post core.PostModel, _ int) Tweet {
		return presentPost(post, now)
	})

	newest := cached[0]
	age := now.Sub(newest.CachedAt)

	var warning string
	if age > staleAfter {
		warning = "cache is stale, consider running a sync"
	}

	writeJSON(w, http.StatusOK, postsResponse{
		Tweets:  tweets,
		Source:  "cache",
		Warning: warning,
		Meta: &postsMeta{
			Count:       len(tweets),
			CacheAge:    age.Truncate(time.Minute).String(),
			LastUpdated: newest.CachedAt,
		},
	})
}

func (b *Backend) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}
