package usecase

import (
	"context"
	"errors"

	"reelhire-backend/internal/domain"
	"reelhire-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	videoRepo       domain.VideoRepository
	userRepo        domain.UserRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	videoRepo domain.VideoRepository,
	userRepo domain.UserRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		videoRepo:       videoRepo,
		userRepo:        userRepo,
	}
}

// Apply submits an application to a job video. The employer is resolved
// from the job video's owner so it cannot be spoofed by the client.
func (uc *applicationUsecase) Apply(ctx context.Context, userID int64, app *domain.Application) (*domain.Application, error) {
	// 1. Target must exist and be a job video
	jobVideo, err := uc.videoRepo.GetByID(ctx, app.JobVideoID)
	if err != nil || jobVideo.VideoType != domain.VideoTypeJob {
		return nil, apperror.BadRequest("Invalid job video")
	}

	// 2. The attached video must be the applicant's own resume video
	userVideo, err := uc.videoRepo.GetByID(ctx, app.UserVideoID)
	if err != nil || userVideo.VideoType != domain.VideoTypeResume {
		return nil, apperror.BadRequest("Invalid resume video")
	}
	if userVideo.UserID != userID {
		return nil, apperror.Forbidden("You can only apply with your own resume video")
	}

	// 3. One application per (applicant, job video)
	exists, err := uc.applicationRepo.CheckExists(ctx, app.JobVideoID, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	app.UserID = userID
	app.EmployerID = jobVideo.UserID
	app.Status = domain.ApplicationStatusPending

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// ListForUser returns the caller's applications: their own submissions for
// job seekers, applications targeting their jobs for employers.
func (uc *applicationUsecase) ListForUser(ctx context.Context, userID int64) ([]domain.Application, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}

	var apps []domain.Application
	if user.UserType == domain.UserTypeJobSeeker {
		apps, err = uc.applicationRepo.GetByUser(ctx, userID)
	} else {
		apps, err = uc.applicationRepo.GetByEmployer(ctx, userID)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// UpdateStatus sets a new status. Only the employer the application targets
// may do this; any other actor fails with a 403 and the status is unchanged.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, actorID, applicationID int64, status string) (*domain.Application, error) {
	if !domain.ValidApplicationStatus(status) {
		return nil, apperror.BadRequest("Invalid status")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	if app.EmployerID != actorID {
		return nil, apperror.Forbidden("Not authorized")
	}

	updated, err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return updated, nil
}
