package domain

import (
	"context"
	"time"
)

// Application status constants. The product has not pinned down a workflow,
// so any status may follow any other; the employer owning the job video is
// the only actor allowed to change it.
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusViewed    = "viewed"
	ApplicationStatusInterview = "interview"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusOffered   = "offered"
)

// ValidApplicationStatus reports whether s is one of the known statuses.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusViewed,
		ApplicationStatusInterview, ApplicationStatusRejected,
		ApplicationStatusOffered:
		return true
	}
	return false
}

// Application links a job video, the applicant's resume video, the
// applicant and the employer. EmployerID is resolved from the job video's
// owner when the application is created so employer-side listings need no
// join.
type Application struct {
	ID          int64     `json:"id"`
	JobVideoID  int64     `json:"job_video_id"`
	UserVideoID int64     `json:"user_video_id"`
	UserID      int64     `json:"user_id"`
	EmployerID  int64     `json:"employer_id"`
	Status      string    `json:"status"`
	Note        *string   `json:"note,omitempty"`
	ResumeURL   *string   `json:"resume_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByUser(ctx context.Context, userID int64) ([]Application, error)
	GetByEmployer(ctx context.Context, employerID int64) ([]Application, error)
	CheckExists(ctx context.Context, jobVideoID, userID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Application, error)
}

// ApplicationUsecase defines business logic for applications
type ApplicationUsecase interface {
	Apply(ctx context.Context, userID int64, app *Application) (*Application, error)
	// ListForUser returns the caller's own applications for job seekers and
	// applications targeting the caller's jobs for employers.
	ListForUser(ctx context.Context, userID int64) ([]Application, error)
	// UpdateStatus is restricted to the employer owning the target job video.
	UpdateStatus(ctx context.Context, actorID, applicationID int64, status string) (*Application, error)
}
