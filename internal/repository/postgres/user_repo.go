package postgres

import (
	"context"
	"errors"
	"time"

	"reelhire-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new postgres user repository
func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, username, password, email, full_name, headline, bio, location,
	profile_image, user_type, company_name, company_logo, skills, resume_url, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Password, &u.Email, &u.FullName, &u.Headline,
		&u.Bio, &u.Location, &u.ProfileImage, &u.UserType, &u.CompanyName,
		&u.CompanyLogo, &u.Skills, &u.ResumeURL, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if u.Skills == nil {
		u.Skills = []string{}
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, password, email, full_name, headline, bio, location,
			profile_image, user_type, company_name, company_logo, skills, resume_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	user.CreatedAt = time.Now()
	if user.Skills == nil {
		user.Skills = []string{}
	}

	return r.db.QueryRow(ctx, query,
		user.Username,
		user.Password,
		user.Email,
		user.FullName,
		user.Headline,
		user.Bio,
		user.Location,
		user.ProfileImage,
		user.UserType,
		user.CompanyName,
		user.CompanyLogo,
		user.Skills,
		user.ResumeURL,
		user.CreatedAt,
	).Scan(&user.ID)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(username) = LOWER($1)`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) Update(ctx context.Context, id int64, update *domain.UserUpdate) (*domain.User, error) {
	query := `
		UPDATE users SET
			full_name = COALESCE($2, full_name),
			headline = COALESCE($3, headline),
			bio = COALESCE($4, bio),
			location = COALESCE($5, location),
			profile_image = COALESCE($6, profile_image),
			company_name = COALESCE($7, company_name),
			company_logo = COALESCE($8, company_logo),
			skills = COALESCE($9, skills),
			resume_url = COALESCE($10, resume_url)
		WHERE id = $1
		RETURNING ` + userColumns

	return scanUser(r.db.QueryRow(ctx, query, id,
		update.FullName,
		update.Headline,
		update.Bio,
		update.Location,
		update.ProfileImage,
		update.CompanyName,
		update.CompanyLogo,
		update.Skills,
		update.ResumeURL,
	))
}
