package usecase

import (
	"context"
	"errors"

	"reelhire-backend/internal/domain"
	"reelhire-backend/pkg/apperror"
	"reelhire-backend/pkg/logger"
)

const defaultFeedLimit = 10

type videoUsecase struct {
	videoRepo   domain.VideoRepository
	userRepo    domain.UserRepository
	commentRepo domain.CommentRepository
}

// NewVideoUsecase creates a new video usecase
func NewVideoUsecase(videoRepo domain.VideoRepository, userRepo domain.UserRepository, commentRepo domain.CommentRepository) domain.VideoUsecase {
	return &videoUsecase{
		videoRepo:   videoRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
	}
}

// CreateVideo stores a new video owned by userID. The video type must match
// the author's role: employers post job openings, job seekers post resumes.
func (uc *videoUsecase) CreateVideo(ctx context.Context, userID int64, video *domain.Video) (*domain.Video, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Unauthorized("User not found")
	}

	if video.VideoType != domain.VideoTypeResume && video.VideoType != domain.VideoTypeJob {
		return nil, apperror.BadRequest("Invalid video type")
	}
	if expected := ownVideoType(user.UserType); video.VideoType != expected {
		return nil, apperror.BadRequest("A " + user.UserType + " account can only post " + expected + " videos")
	}

	video.UserID = userID
	if err := uc.videoRepo.Create(ctx, video); err != nil {
		return nil, apperror.Internal(err)
	}
	return video, nil
}

// GetVideo returns the video, counting the fetch as a view.
func (uc *videoUsecase) GetVideo(ctx context.Context, id int64) (*domain.Video, error) {
	video, err := uc.videoRepo.IncrementStat(ctx, id, domain.StatViews)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Video not found")
		}
		return nil, apperror.Internal(err)
	}
	return video, nil
}

func (uc *videoUsecase) ListByType(ctx context.Context, videoType string, limit, offset int) ([]domain.Video, error) {
	if videoType != domain.VideoTypeResume && videoType != domain.VideoTypeJob {
		return nil, apperror.BadRequest("Invalid video type")
	}
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if offset < 0 {
		offset = 0
	}

	videos, err := uc.videoRepo.GetByType(ctx, videoType, limit, offset)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return videos, nil
}

func (uc *videoUsecase) ListByUser(ctx context.Context, userID int64) ([]domain.Video, error) {
	videos, err := uc.videoRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return videos, nil
}

// Recommend returns a recency-sorted feed of the opposite content kind,
// never including the requester's own videos.
func (uc *videoUsecase) Recommend(ctx context.Context, userID int64, limit int) ([]domain.Video, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Unauthorized("User not found")
	}
	if limit <= 0 {
		limit = defaultFeedLimit
	}

	videos, err := uc.videoRepo.Recommend(ctx, domain.RecommendedTypeFor(user.UserType), userID, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return videos, nil
}

func (uc *videoUsecase) Like(ctx context.Context, id int64) (*domain.Video, error) {
	return uc.bump(ctx, id, domain.StatLikes)
}

func (uc *videoUsecase) Share(ctx context.Context, id int64) (*domain.Video, error) {
	return uc.bump(ctx, id, domain.StatShares)
}

func (uc *videoUsecase) bump(ctx context.Context, id int64, stat domain.VideoStat) (*domain.Video, error) {
	video, err := uc.videoRepo.IncrementStat(ctx, id, stat)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Video not found")
		}
		return nil, apperror.Internal(err)
	}
	return video, nil
}

func (uc *videoUsecase) ListComments(ctx context.Context, videoID int64) ([]domain.Comment, error) {
	if _, err := uc.videoRepo.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Video not found")
		}
		return nil, apperror.Internal(err)
	}

	comments, err := uc.commentRepo.ListByVideo(ctx, videoID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return comments, nil
}

// AddComment stores the comment and bumps the video's comment counter.
func (uc *videoUsecase) AddComment(ctx context.Context, userID, videoID int64, content string) (*domain.Comment, error) {
	if _, err := uc.videoRepo.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Video not found")
		}
		return nil, apperror.Internal(err)
	}

	comment := &domain.Comment{
		VideoID: videoID,
		UserID:  userID,
		Content: content,
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, apperror.Internal(err)
	}

	// The counter is a denormalized cache; a failed bump leaves the comment
	// in place and only skews the count.
	if _, err := uc.videoRepo.IncrementStat(ctx, videoID, domain.StatComments); err != nil {
		logger.Log.Warn("comment counter bump failed", "video_id", videoID, "error", err)
	}

	return comment, nil
}

func ownVideoType(userType string) string {
	if userType == domain.UserTypeEmployer {
		return domain.VideoTypeJob
	}
	return domain.VideoTypeResume
}
