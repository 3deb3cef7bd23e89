package usecase

import (
	"context"
	"errors"

	"reelhire-backend/internal/domain"
	"reelhire-backend/pkg/apperror"
)

type bookmarkUsecase struct {
	bookmarkRepo domain.BookmarkRepository
	videoRepo    domain.VideoRepository
}

// NewBookmarkUsecase creates a new bookmark usecase
func NewBookmarkUsecase(bookmarkRepo domain.BookmarkRepository, videoRepo domain.VideoRepository) domain.BookmarkUsecase {
	return &bookmarkUsecase{bookmarkRepo: bookmarkRepo, videoRepo: videoRepo}
}

func (uc *bookmarkUsecase) List(ctx context.Context, userID int64) ([]domain.Bookmark, error) {
	bookmarks, err := uc.bookmarkRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if bookmarks == nil {
		bookmarks = []domain.Bookmark{}
	}
	return bookmarks, nil
}

// Add bookmarks a video. Bookmarking one twice returns the original record.
func (uc *bookmarkUsecase) Add(ctx context.Context, userID, videoID int64) (*domain.Bookmark, error) {
	if _, err := uc.videoRepo.GetByID(ctx, videoID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Video not found")
		}
		return nil, apperror.Internal(err)
	}

	bookmark, err := uc.bookmarkRepo.Create(ctx, &domain.Bookmark{UserID: userID, VideoID: videoID})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return bookmark, nil
}

// Remove deletes the bookmark; removing one that does not exist succeeds.
func (uc *bookmarkUsecase) Remove(ctx context.Context, userID, videoID int64) error {
	if err := uc.bookmarkRepo.Delete(ctx, userID, videoID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *bookmarkUsecase) IsBookmarked(ctx context.Context, userID, videoID int64) (bool, error) {
	exists, err := uc.bookmarkRepo.Exists(ctx, userID, videoID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return exists, nil
}
