package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// User types
const (
	UserTypeJobSeeker = "job_seeker"
	UserTypeEmployer  = "employer"
)

// User represents a job seeker or an employer. The same record backs both
// roles; company fields are only populated for employers.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Password     string    `json:"-"` // bcrypt hash, never serialized
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Headline     *string   `json:"headline,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	Location     *string   `json:"location,omitempty"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	UserType     string    `json:"user_type"` // "job_seeker" or "employer"
	CompanyName  *string   `json:"company_name,omitempty"`
	CompanyLogo  *string   `json:"company_logo,omitempty"`
	Skills       []string  `json:"skills"`
	ResumeURL    *string   `json:"resume_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserUpdate carries the profile fields a user may change after
// registration. Username, email, password and user type are not editable
// through profile updates.
type UserUpdate struct {
	FullName     *string  `json:"full_name,omitempty"`
	Headline     *string  `json:"headline,omitempty"`
	Bio          *string  `json:"bio,omitempty"`
	Location     *string  `json:"location,omitempty"`
	ProfileImage *string  `json:"profile_image,omitempty"`
	CompanyName  *string  `json:"company_name,omitempty"`
	CompanyLogo  *string  `json:"company_logo,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	ResumeURL    *string  `json:"resume_url,omitempty"`
}

// UserRepository defines data access methods for users.
// Username and email lookups are case-insensitive.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id int64, update *UserUpdate) (*User, error)
}

// AuthUsecase defines registration, login and profile logic
type AuthUsecase interface {
	Register(ctx context.Context, user *User, plainPassword string) (*User, error)
	Login(ctx context.Context, username, plainPassword string) (*User, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	UpdateProfile(ctx context.Context, id int64, update *UserUpdate) (*User, error)
}
