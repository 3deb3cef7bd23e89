package domain

import (
	"context"
	"time"
)

// Comment belongs to exactly one video and one author. Creating one bumps
// the parent video's comment counter.
type Comment struct {
	ID        int64     `json:"id"`
	VideoID   int64     `json:"video_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentRepository defines data access methods for comments
type CommentRepository interface {
	// ListByVideo returns a video's comments, newest first.
	ListByVideo(ctx context.Context, videoID int64) ([]Comment, error)
	Create(ctx context.Context, comment *Comment) error
}
