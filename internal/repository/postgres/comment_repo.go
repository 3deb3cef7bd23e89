package postgres

import (
	"context"
	"time"

	"reelhire-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type commentRepo struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new postgres comment repository
func NewCommentRepository(db *pgxpool.Pool) domain.CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) ListByVideo(ctx context.Context, videoID int64) ([]domain.Comment, error) {
	query := `
		SELECT id, video_id, user_id, content, created_at
		FROM comments
		WHERE video_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, videoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.VideoID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (video_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	comment.CreatedAt = time.Now()

	return r.db.QueryRow(ctx, query,
		comment.VideoID,
		comment.UserID,
		comment.Content,
		comment.CreatedAt,
	).Scan(&comment.ID)
}
