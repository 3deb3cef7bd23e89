package domain

import (
	"context"
	"time"
)

// Video types
const (
	VideoTypeResume = "resume"
	VideoTypeJob    = "job"
)

// VideoStat identifies one of the increment-only counters on a video.
type VideoStat string

const (
	StatViews    VideoStat = "views"
	StatLikes    VideoStat = "likes"
	StatComments VideoStat = "comments"
	StatShares   VideoStat = "shares"
)

// Video is a 60-second clip: either a candidate's video resume or an
// employer's job opening. The type is fixed at creation; counters only
// ever increase.
type Video struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	VideoType    string    `json:"video_type"` // "resume" or "job"
	Views        int64     `json:"views"`
	Likes        int64     `json:"likes"`
	Comments     int64     `json:"comments"`
	Shares       int64     `json:"shares"`
	Skills       []string  `json:"skills"`
	Salary       *string   `json:"salary,omitempty"`   // job videos only
	Location     *string   `json:"location,omitempty"` // job videos only
	JobType      *string   `json:"job_type,omitempty"` // job videos only
	Duration     *int      `json:"duration,omitempty"` // seconds
	CreatedAt    time.Time `json:"created_at"`
}

// RecommendedTypeFor returns the video type the given user type should be
// shown: job seekers browse job openings, employers browse video resumes.
func RecommendedTypeFor(userType string) string {
	if userType == UserTypeJobSeeker {
		return VideoTypeJob
	}
	return VideoTypeResume
}

// VideoRepository defines data access methods for videos
type VideoRepository interface {
	Create(ctx context.Context, video *Video) error
	GetByID(ctx context.Context, id int64) (*Video, error)
	GetByUser(ctx context.Context, userID int64) ([]Video, error)
	// GetByType returns videos of the given type, newest first.
	GetByType(ctx context.Context, videoType string, limit, offset int) ([]Video, error)
	// IncrementStat atomically bumps one counter and returns the new state.
	IncrementStat(ctx context.Context, id int64, stat VideoStat) (*Video, error)
	// Recommend returns up to limit videos of the given type, newest first,
	// excluding those authored by excludeUserID.
	Recommend(ctx context.Context, videoType string, excludeUserID int64, limit int) ([]Video, error)
}

// VideoUsecase defines business logic for videos and their comments
type VideoUsecase interface {
	CreateVideo(ctx context.Context, userID int64, video *Video) (*Video, error)
	// GetVideo returns the video and counts the fetch as a view.
	GetVideo(ctx context.Context, id int64) (*Video, error)
	ListByType(ctx context.Context, videoType string, limit, offset int) ([]Video, error)
	ListByUser(ctx context.Context, userID int64) ([]Video, error)
	Recommend(ctx context.Context, userID int64, limit int) ([]Video, error)
	Like(ctx context.Context, id int64) (*Video, error)
	Share(ctx context.Context, id int64) (*Video, error)

	ListComments(ctx context.Context, videoID int64) ([]Comment, error)
	AddComment(ctx context.Context, userID, videoID int64, content string) (*Comment, error)
}
