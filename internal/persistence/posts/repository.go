package posts

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm/clause"

	"tweetvault/internal/core"
)

// Columns overwritten when an upsert hits an existing tweet_id. The internal
// id survives, everything else is last-write-wins.
var conflictColumns = []string{
	"content",
	"author_name",
	"author_username",
	"author_profile_image",
	"created_at",
	"media_urls",
	"retweet_count",
	"like_count",
	"reply_count",
	"cached_at",
	"is_active",
}

type Repository struct {
	Logger *slog.Logger
	DB     core.DB
}

func (r *Repository) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "posts.Repository")
	return nil
}

func (r *Repository) Upsert(ctx context.Context, posts ...core.ExternalPost) (int64, error) {
	now := time.Now().UTC()

	rows := lo.Map(posts, func(post core.ExternalPost, _ int) core.PostModel {
		media := post.MediaURLs
		if media == nil {
			media = []string{}
		}

		return core.PostModel{
			TweetID:            post.TweetID,
			Content:            post.Content,
			AuthorName:         post.AuthorName,
			AuthorUsername:     post.AuthorUsername,
			AuthorProfileImage: post.AuthorProfileImage,
			CreatedAt:          post.CreatedAt,
			MediaURLs:          media,
			RetweetCount:       post.RetweetCount,
			LikeCount:          post.LikeCount,
			ReplyCount:         post.ReplyCount,
			CachedAt:           now,
			IsActive:           true,
		}
	})

	res := r.DB.
		Model(&core.PostModel{}).
		WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tweet_id"}},
			DoUpdates: clause.AssignmentColumns(conflictColumns),
		}).
		Create(&rows)

	return res.RowsAffected, res.Error
}

func (r *Repository) Prune(ctx context.Context) (int64, error) {
	keep := r.DB.
		Model(&core.PostModel{}).
		Select("id").
		Where("is_active").
		Order("created_at DESC").
		Limit(core.ActiveWindowSize)

	res := r.DB.
		Model(&core.PostModel{}).
		WithContext(ctx).
		Where("is_active AND id NOT IN (?)", keep).
		Update("is_active", false)

	return res.RowsAffected, res.Error
}

func (r *Repository) ListActive(ctx context.Context) ([]core.PostModel, error) {
	var posts []core.PostModel
	err := r.DB.
		Model(&core.PostModel{}).
		WithContext(ctx).
		Where("is_active").
		Order("created_at DESC").
		Limit(core.ActiveWindowSize).
		Find(&posts).Error

	return posts, err
}

func (r *Repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.
		Model(&core.PostModel{}).
		WithContext(ctx).
		Where("is_active").
		Count(&count).Error

	return count, err
}
