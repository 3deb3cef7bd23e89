package postgres

import (
	"context"
	"errors"
	"time"

	"reelhire-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new postgres application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationColumns = `id, job_video_id, user_video_id, user_id, employer_id, status, note, resume_url, created_at`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var a domain.Application
	err := row.Scan(
		&a.ID, &a.JobVideoID, &a.UserVideoID, &a.UserID, &a.EmployerID,
		&a.Status, &a.Note, &a.ResumeURL, &a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_video_id, user_video_id, user_id, employer_id, status, note, resume_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	app.CreatedAt = time.Now()
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	return r.db.QueryRow(ctx, query,
		app.JobVideoID,
		app.UserVideoID,
		app.UserID,
		app.EmployerID,
		app.Status,
		app.Note,
		app.ResumeURL,
		app.CreatedAt,
	).Scan(&app.ID)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	return scanApplication(r.db.QueryRow(ctx, query, id))
}

func (r *applicationRepo) GetByUser(ctx context.Context, userID int64) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	return r.collect(ctx, query, userID)
}

func (r *applicationRepo) GetByEmployer(ctx context.Context, employerID int64) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE employer_id = $1 ORDER BY created_at DESC, id DESC`
	return r.collect(ctx, query, employerID)
}

func (r *applicationRepo) CheckExists(ctx context.Context, jobVideoID, userID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_video_id = $1 AND user_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobVideoID, userID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	query := `UPDATE applications SET status = $2 WHERE id = $1 RETURNING ` + applicationColumns
	return scanApplication(r.db.QueryRow(ctx, query, id, status))
}

func (r *applicationRepo) collect(ctx context.Context, query string, arg any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}
