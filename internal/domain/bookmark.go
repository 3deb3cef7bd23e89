package domain

import (
	"context"
	"time"
)

// Bookmark marks a (user, video) pair. At most one exists per pair;
// creating a duplicate returns the existing record.
type Bookmark struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	VideoID   int64     `json:"video_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BookmarkRepository defines data access methods for bookmarks
type BookmarkRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]Bookmark, error)
	// Create is idempotent: an existing (user, video) bookmark is returned
	// unchanged instead of duplicated.
	Create(ctx context.Context, bookmark *Bookmark) (*Bookmark, error)
	// Delete removes the pair's bookmark; deleting a missing one is a no-op.
	Delete(ctx context.Context, userID, videoID int64) error
	Exists(ctx context.Context, userID, videoID int64) (bool, error)
}

// BookmarkUsecase defines business logic for bookmarks
type BookmarkUsecase interface {
	List(ctx context.Context, userID int64) ([]Bookmark, error)
	Add(ctx context.Context, userID, videoID int64) (*Bookmark, error)
	Remove(ctx context.Context, userID, videoID int64) error
	IsBookmarked(ctx context.Context, userID, videoID int64) (bool, error)
}
