package syncing_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"tweetvault/internal/config"
	"tweetvault/internal/core"
	"tweetvault/internal/syncing"
)

var errUpstream = errors.New("upstream down")

type fakeFetcher struct {
	posts []core.ExternalPost
	err   error
}

func (f *fakeFetcher) FetchRecentPosts(_ context.Context) ([]core.ExternalPost, error) {
	return f.posts, f.err
}

// memStore implements the repository contract in memory: upsert keyed by
// tweet_id with a stable internal id, prune as a pure function of state.
type memStore struct {
	nextID    int64
	rows      map[string]*core.PostModel
	upsertErr error
	pruneErr  error
}

func newMemStore() *memStore {
	return &memStore{rows: map[string]*core.PostModel{}}
}

func (s *memStore) Upsert(_ context.Context, posts ...core.ExternalPost) (int64, error) {
	if s.upsertErr != nil {
		return 0, s.upsertErr
	}

	now := time.Now().UTC()
	for _, post := range posts {
		row, ok := s.rows[post.TweetID]
		if !ok {
			s.nextID++
			row = &core.PostModel{ID: s.nextID, TweetID: post.TweetID}
			s.rows[post.TweetID] = row
		}

		row.Content = post.Content
		row.AuthorName = post.AuthorName
		row.AuthorUsername = post.AuthorUsername
		row.AuthorProfileImage = post.AuthorProfileImage
		row.CreatedAt = post.CreatedAt
		row.MediaURLs = post.MediaURLs
		row.RetweetCount = post.RetweetCount
		row.LikeCount = post.LikeCount
		row.ReplyCount = post.ReplyCount
		row.CachedAt = now
		row.IsActive = true
	}

	return int64(len(posts)), nil
}

func (s *memStore) Prune(_ context.Context) (int64, error) {
	if s.pruneErr != nil {
		return 0, s.pruneErr
	}

	active := s.activeDesc()

	var flipped int64
	for i, row := range active {
		if i >= core.ActiveWindowSize {
			row.IsActive = false
			flipped++
		}
	}
	return flipped, nil
}

func (s *memStore) ListActive(_ context.Context) ([]core.PostModel, error) {
	active := s.activeDesc()
	if len(active) > core.ActiveWindowSize {
		active = active[:core.ActiveWindowSize]
	}
	return lo.Map(active, func(row *core.PostModel, _ int) core.PostModel {
		return *row
	}), nil
}

func (s *memStore) CountActive(_ context.Context) (int64, error) {
	return int64(len(s.activeDesc())), nil
}

func (s *memStore) activeDesc() []*core.PostModel {
	active := lo.Filter(lo.Values(s.rows), func(row *core.PostModel, _ int) bool {
		return row.IsActive
	})
	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	return active
}

func (s *memStore) snapshot() map[string]core.PostModel {
	return lo.MapValues(s.rows, func(row *core.PostModel, _ string) core.PostModel {
		return *row
	})
}

func newSyncer(fetcher core.Fetcher, store core.PostRepository) *syncing.Syncer {
	return &syncing.Syncer{
		Logger:  slog.New(slog.DiscardHandler),
		Config:  &config.Config{AccountHandle: "someone"},
		Fetcher: fetcher,
		Posts:   store,
	}
}

func somePosts(n int) []core.ExternalPost {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	return lo.Times(n, func(i int) core.ExternalPost {
		return core.ExternalPost{
			TweetID:        fmt.Sprintf("t%02d", i),
			Content:        fmt.Sprintf("post %d", i),
			AuthorName:     "Someone",
			AuthorUsername: "someone",
			CreatedAt:      base.Add(time.Duration(i) * time.Hour),
			MediaURLs:      []string{},
		}
	})
}

func TestSync_BoundedActiveWindow(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	syncer := newSyncer(&fakeFetcher{posts: somePosts(10)}, store)

	result, err := syncer.Sync(t.Context())
	require.NoError(t, err)
	require.Equal(t, 10, result.Cached)
	require.EqualValues(t, 2, result.Deactivated)

	require.Len(t, store.rows, 10)

	active := store.activeDesc()
	require.Len(t, active, core.ActiveWindowSize)

	// The two oldest by created_at are flipped inactive.
	require.False(t, store.rows["t00"].IsActive)
	require.False(t, store.rows["t01"].IsActive)
	require.True(t, store.rows["t09"].IsActive)
}

func TestSync_Idempotent(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	syncer := newSyncer(&fakeFetcher{posts: somePosts(10)}, store)

	_, err := syncer.Sync(t.Context())
	require.NoError(t, err)

	first := store.snapshot()

	result, err := syncer.Sync(t.Context())
	require.NoError(t, err)
	require.Equal(t, 10, result.Cached)

	// Re-upserting flips the old rows active again, pruning flips them back.
	require.EqualValues(t, 2, result.Deactivated)

	second := store.snapshot()
	require.Len(t, second, len(first))

	for id, row := range second {
		require.Equal(t, first[id].ID, row.ID)
		require.Equal(t, first[id].IsActive, row.IsActive)
		require.Equal(t, first[id].Content, row.Content)
	}
}

func TestSync_NewerPostEvictsOldest(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	posts := somePosts(8)

	_, err := newSyncer(&fakeFetcher{posts: posts}, store).Sync(t.Context())
	require.NoError(t, err)

	newest := core.ExternalPost{
		TweetID:   "fresh",
		Content:   "just in",
		CreatedAt: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
		MediaURLs: []string{},
	}

	result, err := newSyncer(&fakeFetcher{posts: []core.ExternalPost{newest}}, store).Sync(t.Context())
	require.NoError(t, err)
	require.EqualValues(t, 1, result.Deactivated)

	require.Len(t, store.rows, 9)

	active := store.activeDesc()
	require.Len(t, active, core.ActiveWindowSize)
	require.Equal(t, "fresh", active[0].TweetID)

	// The previously oldest active record lost its slot.
	require.False(t, store.rows["t00"].IsActive)
}

func TestSync_UpsertUpdatesExistingRow(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	post := somePosts(1)[0]

	_, err := newSyncer(&fakeFetcher{posts: []core.ExternalPost{post}}, store).Sync(t.Context())
	require.NoError(t, err)

	originalID := store.rows[post.TweetID].ID

	post.LikeCount = 99
	_, err = newSyncer(&fakeFetcher{posts: []core.ExternalPost{post}}, store).Sync(t.Context())
	require.NoError(t, err)

	require.Len(t, store.rows, 1)
	require.Equal(t, originalID, store.rows[post.TweetID].ID)
	require.Equal(t, 99, store.rows[post.TweetID].LikeCount)
}

func TestSync_FetchErrorLeavesStoreUntouched(t *testing.T) {
	t.Parallel()

	store := newMemStore()

	_, err := newSyncer(&fakeFetcher{posts: somePosts(3)}, store).Sync(t.Context())
	require.NoError(t, err)

	before := store.snapshot()

	_, err = newSyncer(&fakeFetcher{err: errUpstream}, store).Sync(t.Context())
	require.ErrorIs(t, err, errUpstream)
	require.Equal(t, before, store.snapshot())
}

func TestSync_EmptyFetchLeavesStoreUntouched(t *testing.T) {
	t.Parallel()

	store := newMemStore()

	_, err := newSyncer(&fakeFetcher{posts: somePosts(3)}, store).Sync(t.Context())
	require.NoError(t, err)

	before := store.snapshot()

	_, err = newSyncer(&fakeFetcher{}, store).Sync(t.Context())
	require.ErrorIs(t, err, syncing.ErrNoPosts)
	require.Equal(t, before, store.snapshot())
}

func TestSync_UpsertErrorAbortsBatch(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.upsertErr = errors.New("db write failed")

	_, err := newSyncer(&fakeFetcher{posts: somePosts(3)}, store).Sync(t.Context())
	require.ErrorContains(t, err, "db write failed")
	require.Empty(t, store.rows)
}

func TestSync_PruneErrorIsNonFatal(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.pruneErr = errors.New("prune failed")

	result, err := newSyncer(&fakeFetcher{posts: somePosts(10)}, store).Sync(t.Context())
	require.NoError(t, err)
	require.Equal(t, 10, result.Cached)
	require.EqualValues(t, 0, result.Deactivated)

	// Posts were saved even though pruning failed.
	require.Len(t, store.rows, 10)
}
