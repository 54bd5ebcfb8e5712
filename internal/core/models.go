package core

import (
	"time"
)

// ActiveWindowSize is the number of most recent cached posts that stay visible
// to readers. Everything older is deactivated, never deleted.
const ActiveWindowSize = 8

// ExternalPost is a single normalized post as fetched from the Twitter API.
// It only lives between a fetch and the following upsert.
type ExternalPost struct {
	TweetID            string
	Content            string
	AuthorName         string
	AuthorUsername     string
	AuthorProfileImage string
	CreatedAt          time.Time
	MediaURLs          []string
	RetweetCount       int
	LikeCount          int
	ReplyCount         int
}

// PostModel is the durable representation of a cached post.
type PostModel struct {
	ID int64 `gorm:"primaryKey"`

	TweetID            string `gorm:"uniqueIndex"`
	Content            string
	AuthorName         string
	AuthorUsername     string
	AuthorProfileImage string
	CreatedAt          time.Time
	MediaURLs          []string `gorm:"serializer:json;type:jsonb"`
	RetweetCount       int
	LikeCount          int
	ReplyCount         int

	CachedAt time.Time
	IsActive bool
}

func (PostModel) TableName() string {
	return "posts"
}

// SyncResult summarizes one pipeline run.
type SyncResult struct {
	Cached      int
	Deactivated int64
	Message     string
}
