package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reelhire-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type videoRepo struct {
	db *pgxpool.Pool
}

// NewVideoRepository creates a new postgres video repository
func NewVideoRepository(db *pgxpool.Pool) domain.VideoRepository {
	return &videoRepo{db: db}
}

const videoColumns = `id, user_id, title, description, video_url, thumbnail_url, video_type,
	views, likes, comments, shares, skills, salary, location, job_type, duration, created_at`

func scanVideo(row pgx.Row) (*domain.Video, error) {
	var v domain.Video
	err := row.Scan(
		&v.ID, &v.UserID, &v.Title, &v.Description, &v.VideoURL, &v.ThumbnailURL,
		&v.VideoType, &v.Views, &v.Likes, &v.Comments, &v.Shares, &v.Skills,
		&v.Salary, &v.Location, &v.JobType, &v.Duration, &v.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if v.Skills == nil {
		v.Skills = []string{}
	}
	return &v, nil
}

func collectVideos(rows pgx.Rows) ([]domain.Video, error) {
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *v)
	}
	return videos, rows.Err()
}

func (r *videoRepo) Create(ctx context.Context, video *domain.Video) error {
	query := `
		INSERT INTO videos (user_id, title, description, video_url, thumbnail_url, video_type,
			skills, salary, location, job_type, duration, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	video.CreatedAt = time.Now()
	video.Views, video.Likes, video.Comments, video.Shares = 0, 0, 0, 0
	if video.Skills == nil {
		video.Skills = []string{}
	}

	return r.db.QueryRow(ctx, query,
		video.UserID,
		video.Title,
		video.Description,
		video.VideoURL,
		video.ThumbnailURL,
		video.VideoType,
		video.Skills,
		video.Salary,
		video.Location,
		video.JobType,
		video.Duration,
		video.CreatedAt,
	).Scan(&video.ID)
}

func (r *videoRepo) GetByID(ctx context.Context, id int64) (*domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`
	return scanVideo(r.db.QueryRow(ctx, query, id))
}

func (r *videoRepo) GetByUser(ctx context.Context, userID int64) ([]domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectVideos(rows)
}

func (r *videoRepo) GetByType(ctx context.Context, videoType string, limit, offset int) ([]domain.Video, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos
		WHERE video_type = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, videoType, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectVideos(rows)
}

// IncrementStat bumps one counter in a single UPDATE so concurrent bumps
// never lose increments.
func (r *videoRepo) IncrementStat(ctx context.Context, id int64, stat domain.VideoStat) (*domain.Video, error) {
	var column string
	switch stat {
	case domain.StatViews:
		column = "views"
	case domain.StatLikes:
		column = "likes"
	case domain.StatComments:
		column = "comments"
	case domain.StatShares:
		column = "shares"
	default:
		return nil, fmt.Errorf("unknown video stat %q", stat)
	}

	query := fmt.Sprintf(`UPDATE videos SET %s = %s + 1 WHERE id = $1 RETURNING `+videoColumns, column, column)
	return scanVideo(r.db.QueryRow(ctx, query, id))
}

func (r *videoRepo) Recommend(ctx context.Context, videoType string, excludeUserID int64, limit int) ([]domain.Video, error) {
	query := `
		SELECT ` + videoColumns + `
		FROM videos
		WHERE video_type = $1 AND user_id <> $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3`
	rows, err := r.db.Query(ctx, query, videoType, excludeUserID, limit)
	if err != nil {
		return nil, err
	}
	return collectVideos(rows)
}
