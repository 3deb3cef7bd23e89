package postgres

import (
	"context"
	"errors"
	"time"

	"reelhire-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bookmarkRepo struct {
	db *pgxpool.Pool
}

// NewBookmarkRepository creates a new postgres bookmark repository
func NewBookmarkRepository(db *pgxpool.Pool) domain.BookmarkRepository {
	return &bookmarkRepo{db: db}
}

func (r *bookmarkRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Bookmark, error) {
	query := `
		SELECT id, user_id, video_id, created_at
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []domain.Bookmark
	for rows.Next() {
		var b domain.Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.VideoID, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

// Create relies on the (user_id, video_id) unique constraint: a conflicting
// insert falls through to re-selecting the existing row, so the operation
// is idempotent even under concurrent creates.
func (r *bookmarkRepo) Create(ctx context.Context, bookmark *domain.Bookmark) (*domain.Bookmark, error) {
	insert := `
		INSERT INTO bookmarks (user_id, video_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, video_id) DO NOTHING
		RETURNING id, created_at`

	now := time.Now()
	err := r.db.QueryRow(ctx, insert, bookmark.UserID, bookmark.VideoID, now).
		Scan(&bookmark.ID, &bookmark.CreatedAt)
	if err == nil {
		return bookmark, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// Conflict: fetch the existing bookmark
	query := `SELECT id, user_id, video_id, created_at FROM bookmarks WHERE user_id = $1 AND video_id = $2`
	var existing domain.Bookmark
	if err := r.db.QueryRow(ctx, query, bookmark.UserID, bookmark.VideoID).
		Scan(&existing.ID, &existing.UserID, &existing.VideoID, &existing.CreatedAt); err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *bookmarkRepo) Delete(ctx context.Context, userID, videoID int64) error {
	// Deleting a missing bookmark is a no-op
	_, err := r.db.Exec(ctx, `DELETE FROM bookmarks WHERE user_id = $1 AND video_id = $2`, userID, videoID)
	return err
}

func (r *bookmarkRepo) Exists(ctx context.Context, userID, videoID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bookmarks WHERE user_id = $1 AND video_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, videoID).Scan(&exists)
	return exists, err
}
