package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"reelhire-backend/internal/domain"
)

type commentRepo struct {
	mu       sync.RWMutex
	comments map[int64]domain.Comment
	nextID   int64
}

// NewCommentRepository creates an in-memory comment repository
func NewCommentRepository() domain.CommentRepository {
	return &commentRepo{comments: make(map[int64]domain.Comment), nextID: 1}
}

func (r *commentRepo) ListByVideo(ctx context.Context, videoID int64) ([]domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var comments []domain.Comment
	for _, c := range r.comments {
		if c.VideoID == videoID {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID > comments[j].ID
		}
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (r *commentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment.ID = r.nextID
	r.nextID++
	comment.CreatedAt = time.Now()
	r.comments[comment.ID] = *comment
	return nil
}
