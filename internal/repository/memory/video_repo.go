package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"reelhire-backend/internal/domain"
)

type videoRepo struct {
	mu     sync.RWMutex
	videos map[int64]domain.Video
	nextID int64
}

// NewVideoRepository creates an in-memory video repository
func NewVideoRepository() domain.VideoRepository {
	return &videoRepo{videos: make(map[int64]domain.Video), nextID: 1}
}

func (r *videoRepo) Create(ctx context.Context, video *domain.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	video.ID = r.nextID
	r.nextID++
	video.Views, video.Likes, video.Comments, video.Shares = 0, 0, 0, 0
	video.CreatedAt = time.Now()
	if video.Skills == nil {
		video.Skills = []string{}
	}
	r.videos[video.ID] = *video
	return nil
}

func (r *videoRepo) GetByID(ctx context.Context, id int64) (*domain.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	video, ok := r.videos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &video, nil
}

func (r *videoRepo) GetByUser(ctx context.Context, userID int64) ([]domain.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var videos []domain.Video
	for _, v := range r.videos {
		if v.UserID == userID {
			videos = append(videos, v)
		}
	}
	sortNewestFirst(videos)
	return videos, nil
}

func (r *videoRepo) GetByType(ctx context.Context, videoType string, limit, offset int) ([]domain.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var videos []domain.Video
	for _, v := range r.videos {
		if v.VideoType == videoType {
			videos = append(videos, v)
		}
	}
	sortNewestFirst(videos)
	return paginate(videos, limit, offset), nil
}

func (r *videoRepo) IncrementStat(ctx context.Context, id int64, stat domain.VideoStat) (*domain.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	video, ok := r.videos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	switch stat {
	case domain.StatViews:
		video.Views++
	case domain.StatLikes:
		video.Likes++
	case domain.StatComments:
		video.Comments++
	case domain.StatShares:
		video.Shares++
	}

	r.videos[id] = video
	return &video, nil
}

func (r *videoRepo) Recommend(ctx context.Context, videoType string, excludeUserID int64, limit int) ([]domain.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var videos []domain.Video
	for _, v := range r.videos {
		if v.VideoType == videoType && v.UserID != excludeUserID {
			videos = append(videos, v)
		}
	}
	sortNewestFirst(videos)
	return paginate(videos, limit, 0), nil
}

// sortNewestFirst orders by creation time descending, breaking ties on the
// higher (more recently assigned) id.
func sortNewestFirst(videos []domain.Video) {
	sort.Slice(videos, func(i, j int) bool {
		if videos[i].CreatedAt.Equal(videos[j].CreatedAt) {
			return videos[i].ID > videos[j].ID
		}
		return videos[i].CreatedAt.After(videos[j].CreatedAt)
	})
}

func paginate(videos []domain.Video, limit, offset int) []domain.Video {
	if offset >= len(videos) {
		return []domain.Video{}
	}
	end := len(videos)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return videos[offset:end]
}
