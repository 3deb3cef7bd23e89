package usecase

import (
	"context"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"reelhire-backend/pkg/apperror"
	"reelhire-backend/pkg/blob"

	"github.com/google/uuid"
)

// Upload kinds, each mapped to its own bucket.
const (
	UploadKindVideo     = "video"
	UploadKindThumbnail = "thumbnail"
	UploadKindAvatar    = "avatar"
)

// UploadResult is the stored object's location.
type UploadResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// UploadUsecase stores user media in the blob store.
type UploadUsecase interface {
	Upload(ctx context.Context, userID int64, kind, filename string, body io.Reader) (*UploadResult, error)
}

// UploadBuckets maps upload kinds to bucket names.
type UploadBuckets struct {
	Video     string
	Thumbnail string
	Avatar    string
}

type uploadUsecase struct {
	store   blob.Store
	buckets UploadBuckets
}

// NewUploadUsecase creates a new upload usecase
func NewUploadUsecase(store blob.Store, buckets UploadBuckets) UploadUsecase {
	return &uploadUsecase{store: store, buckets: buckets}
}

var allowedExtensions = map[string]map[string]bool{
	UploadKindVideo:     {".mp4": true, ".webm": true, ".mov": true},
	UploadKindThumbnail: {".jpg": true, ".jpeg": true, ".png": true, ".webp": true},
	UploadKindAvatar:    {".jpg": true, ".jpeg": true, ".png": true, ".webp": true},
}

// Upload stores the object under a fresh per-user path and returns the
// public URL. The original filename only contributes its extension.
func (uc *uploadUsecase) Upload(ctx context.Context, userID int64, kind, filename string, body io.Reader) (*UploadResult, error) {
	if uc.store == nil {
		return nil, apperror.New(http.StatusServiceUnavailable, "Uploads are not configured", nil)
	}

	var bucket string
	switch kind {
	case UploadKindVideo:
		bucket = uc.buckets.Video
	case UploadKindThumbnail:
		bucket = uc.buckets.Thumbnail
	case UploadKindAvatar:
		bucket = uc.buckets.Avatar
	default:
		return nil, apperror.BadRequest("Invalid upload kind")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[kind][ext] {
		return nil, apperror.BadRequest("Unsupported file type " + ext)
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	path := uploadPath(userID, ext)
	url, err := uc.store.Upload(ctx, bucket, path, contentType, body)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &UploadResult{URL: url, Path: path}, nil
}

func uploadPath(userID int64, ext string) string {
	return "users/" + strconv.FormatInt(userID, 10) + "/" + uuid.NewString() + ext
}
