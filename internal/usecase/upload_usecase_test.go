package usecase_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"reelhire-backend/internal/usecase"
	"reelhire-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	bucket string
	path   string
}

func (s *fakeStore) Upload(ctx context.Context, bucket, path, contentType string, body io.Reader) (string, error) {
	s.bucket = bucket
	s.path = path
	return "https://cdn.example/" + bucket + "/" + path, nil
}

func (s *fakeStore) PublicURL(bucket, path string) string {
	return "https://cdn.example/" + bucket + "/" + path
}

func testBuckets() usecase.UploadBuckets {
	return usecase.UploadBuckets{Video: "videos", Thumbnail: "thumbs", Avatar: "avatars"}
}

func TestUploadRoutesKindToBucket(t *testing.T) {
	store := &fakeStore{}
	uc := usecase.NewUploadUsecase(store, testBuckets())

	result, err := uc.Upload(context.Background(), 42, usecase.UploadKindVideo, "clip.MP4", strings.NewReader("data"))
	require.NoError(t, err)

	assert.Equal(t, "videos", store.bucket)
	assert.True(t, strings.HasPrefix(store.path, "users/42/"))
	assert.True(t, strings.HasSuffix(store.path, ".mp4"))
	assert.Contains(t, result.URL, store.path)
}

func TestUploadRejectsBadInput(t *testing.T) {
	uc := usecase.NewUploadUsecase(&fakeStore{}, testBuckets())
	ctx := context.Background()

	_, err := uc.Upload(ctx, 1, "archive", "x.zip", strings.NewReader(""))
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)

	_, err = uc.Upload(ctx, 1, usecase.UploadKindAvatar, "selfie.exe", strings.NewReader(""))
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestUploadWithoutStoreIsUnavailable(t *testing.T) {
	uc := usecase.NewUploadUsecase(nil, testBuckets())

	_, err := uc.Upload(context.Background(), 1, usecase.UploadKindVideo, "clip.mp4", strings.NewReader(""))
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 503, appErr.Code)
}
