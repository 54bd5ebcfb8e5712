package core

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type DB interface {
	Model(a any) *gorm.DB
	EstimatedCount(tableName string) (int64, error)
	DB() (*sql.DB, error)
}

// PostRepository owns the posts table. It is the only component that mutates
// cached_at and is_active.
type PostRepository interface {
	// Upsert writes posts keyed by tweet_id, last-write-wins on conflict.
	Upsert(ctx context.Context, posts ...ExternalPost) (int64, error)
	// Prune deactivates every active post outside the window of the
	// ActiveWindowSize newest by created_at. Idempotent.
	Prune(ctx context.Context) (int64, error)
	ListActive(ctx context.Context) ([]PostModel, error)
	CountActive(ctx context.Context) (int64, error)
}

type Fetcher interface {
	FetchRecentPosts(ctx context.Context) ([]ExternalPost, error)
}

type Syncer interface {
	Sync(ctx context.Context) (SyncResult, error)
}

type Migrator interface {
	Up(ctx context.Context) error
	Down(ctx context.Context) error
}
