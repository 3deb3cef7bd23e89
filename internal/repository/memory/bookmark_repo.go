package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"reelhire-backend/internal/domain"
)

type bookmarkRepo struct {
	mu        sync.RWMutex
	bookmarks map[int64]domain.Bookmark
	nextID    int64
}

// NewBookmarkRepository creates an in-memory bookmark repository
func NewBookmarkRepository() domain.BookmarkRepository {
	return &bookmarkRepo{bookmarks: make(map[int64]domain.Bookmark), nextID: 1}
}

func (r *bookmarkRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Bookmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookmarks []domain.Bookmark
	for _, b := range r.bookmarks {
		if b.UserID == userID {
			bookmarks = append(bookmarks, b)
		}
	}
	sort.Slice(bookmarks, func(i, j int) bool {
		if bookmarks[i].CreatedAt.Equal(bookmarks[j].CreatedAt) {
			return bookmarks[i].ID > bookmarks[j].ID
		}
		return bookmarks[i].CreatedAt.After(bookmarks[j].CreatedAt)
	})
	return bookmarks, nil
}

// Create dedups under the store lock so concurrent creates of the same
// (user, video) pair cannot both insert.
func (r *bookmarkRepo) Create(ctx context.Context, bookmark *domain.Bookmark) (*domain.Bookmark, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookmarks {
		if b.UserID == bookmark.UserID && b.VideoID == bookmark.VideoID {
			existing := b
			return &existing, nil
		}
	}

	bookmark.ID = r.nextID
	r.nextID++
	bookmark.CreatedAt = time.Now()
	r.bookmarks[bookmark.ID] = *bookmark
	return bookmark, nil
}

func (r *bookmarkRepo) Delete(ctx context.Context, userID, videoID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, b := range r.bookmarks {
		if b.UserID == userID && b.VideoID == videoID {
			delete(r.bookmarks, id)
			return nil
		}
	}
	return nil
}

func (r *bookmarkRepo) Exists(ctx context.Context, userID, videoID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookmarks {
		if b.UserID == userID && b.VideoID == videoID {
			return true, nil
		}
	}
	return false, nil
}
