package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reelhire-backend/config"
	v1 "reelhire-backend/internal/delivery/http/v1"
	"reelhire-backend/internal/repository/memory"
	"reelhire-backend/internal/usecase"
	"reelhire-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id"`
}

type testServer struct {
	router *gin.Engine
	t      *testing.T
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stores := memory.NewStores()
	require.NoError(t, stores.Seed(context.Background()))

	cfg := &config.Config{
		Port:                     "8080",
		FrontendURL:              "http://localhost:3000",
		RateLimitWindowSeconds:   60,
		RateLimitLoginThreshold:  1000,
		RateLimitGlobalThreshold: 100000,
	}
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        usecase.NewAuthUsecase(stores.Users),
		VideoUC:       usecase.NewVideoUsecase(stores.Videos, stores.Users, stores.Comments),
		ApplicationUC: usecase.NewApplicationUsecase(stores.Applications, stores.Videos, stores.Users),
		MessageUC:     usecase.NewMessageUsecase(stores.Messages, stores.Users),
		BookmarkUC:    usecase.NewBookmarkUsecase(stores.Bookmarks, stores.Videos),
		UploadUC:      usecase.NewUploadUsecase(nil, usecase.UploadBuckets{}),
		Tokens:        tokens,
		Config:        cfg,
	})

	return &testServer{router: router, t: t}
}

func (s *testServer) do(method, path, cookie string, body any) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

// login authenticates one of the seeded demo accounts and returns the
// session cookie.
func (s *testServer) login(username string) string {
	s.t.Helper()

	rec, _ := s.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": "password123",
	})
	require.Equal(s.t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			return c.Name + "=" + c.Value
		}
	}
	s.t.Fatal("login response did not set a session cookie")
	return ""
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.RequestID)
	assert.Equal(t, rec.Header().Get("X-Request-ID"), env.RequestID)
}

func TestLoginIsGenericOnMismatch(t *testing.T) {
	s := newTestServer(t)

	rec1, env1 := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": "nobody", "password": "x"})
	rec2, env2 := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": "techcorp", "password": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rec1.Code)
	assert.Equal(t, http.StatusUnauthorized, rec2.Code)
	assert.Equal(t, env1.Message, env2.Message)
}

func TestRegisterLoginMe(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"username":  "newseeker",
		"email":     "new@example.com",
		"password":  "password123",
		"full_name": "New Seeker",
		"user_type": "job_seeker",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("Duplicate username conflicts", func(t *testing.T) {
		rec, _ := s.do(http.MethodPost, "/api/auth/register", "", gin.H{
			"username":  "newseeker",
			"email":     "different@example.com",
			"password":  "password123",
			"full_name": "Copy Cat",
			"user_type": "job_seeker",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	cookie := s.login("newseeker")
	rec, env := s.do(http.MethodGet, "/api/users/me", cookie, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		User map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "newseeker", data.User["username"])
	// The bcrypt hash never leaks into a response.
	_, leaked := data.User["password"]
	assert.False(t, leaked)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/users/me", "/api/applications", "/api/messages", "/api/bookmarks", "/api/videos/recommended"} {
		rec, _ := s.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestVideoListValidatesType(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(http.MethodGet, "/api/videos?type=podcast", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env := s.do(http.MethodGet, "/api/videos?type=job", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Videos []map[string]any `json:"videos"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.Videos, 2)
}

func TestVideoViewCounter(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(http.MethodGet, "/api/videos/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Video struct {
			Views int64 `json:"views"`
		} `json:"video"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	first := data.Video.Views

	_, env = s.do(http.MethodGet, "/api/videos/1", "", nil)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, first+1, data.Video.Views)
}

func TestRecommendedFeedMatchesRole(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login("sarahjohnson")

	rec, env := s.do(http.MethodGet, "/api/videos/recommended", cookie, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Videos []struct {
			VideoType string `json:"video_type"`
		} `json:"videos"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Videos)
	for _, v := range data.Videos {
		assert.Equal(t, "job", v.VideoType)
	}
}

// TestHiringFlow walks the full loop: a seeker applies to a job, the
// employer reviews and schedules an interview, and the seeker sees the
// updated status.
func TestHiringFlow(t *testing.T) {
	s := newTestServer(t)

	seekerCookie := s.login("sarahjohnson")

	// Find a job the seeker has not applied to and their own resume video.
	_, env := s.do(http.MethodGet, "/api/videos?type=job", "", nil)
	var jobs struct {
		Videos []struct {
			ID     int64 `json:"id"`
			UserID int64 `json:"user_id"`
		} `json:"videos"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &jobs))

	_, env = s.do(http.MethodGet, "/api/users/me", seekerCookie, nil)
	var me struct {
		User struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))

	_, env = s.do(http.MethodGet, fmt.Sprintf("/api/users/%d/videos", me.User.ID), "", nil)
	var myVideos struct {
		Videos []struct {
			ID        int64  `json:"id"`
			VideoType string `json:"video_type"`
		} `json:"videos"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &myVideos))
	require.NotEmpty(t, myVideos.Videos)
	resumeID := myVideos.Videos[0].ID

	_, env = s.do(http.MethodGet, "/api/applications", seekerCookie, nil)
	var existing struct {
		Applications []struct {
			JobVideoID int64 `json:"job_video_id"`
		} `json:"applications"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &existing))
	applied := map[int64]bool{}
	for _, a := range existing.Applications {
		applied[a.JobVideoID] = true
	}

	var jobID int64
	for _, j := range jobs.Videos {
		if !applied[j.ID] {
			jobID = j.ID
			break
		}
	}
	require.NotZero(t, jobID, "seed data should leave an open job")

	rec, env := s.do(http.MethodPost, "/api/applications", seekerCookie, gin.H{
		"job_video_id":  jobID,
		"user_video_id": resumeID,
		"note":          "Excited about this role",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Application struct {
			ID     int64  `json:"id"`
			Status string `json:"status"`
		} `json:"application"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "pending", created.Application.Status)

	t.Run("Applying twice conflicts", func(t *testing.T) {
		rec, _ := s.do(http.MethodPost, "/api/applications", seekerCookie, gin.H{
			"job_video_id":  jobID,
			"user_video_id": resumeID,
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("The seeker cannot change the status", func(t *testing.T) {
		rec, _ := s.do(http.MethodPatch, fmt.Sprintf("/api/applications/%d/status", created.Application.ID), seekerCookie, gin.H{
			"status": "offered",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	// The employer owning the job finds the application and moves it on.
	var employerCookie string
	for _, j := range jobs.Videos {
		if j.ID == jobID {
			if j.UserID == 1 {
				employerCookie = s.login("techcorp")
			} else {
				employerCookie = s.login("innovatedesign")
			}
		}
	}
	require.NotEmpty(t, employerCookie)

	rec, env = s.do(http.MethodPatch, fmt.Sprintf("/api/applications/%d/status", created.Application.ID), employerCookie, gin.H{
		"status": "interview",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	_, env = s.do(http.MethodGet, "/api/applications", seekerCookie, nil)
	var after struct {
		Applications []struct {
			ID     int64  `json:"id"`
			Status string `json:"status"`
		} `json:"applications"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &after))

	found := false
	for _, a := range after.Applications {
		if a.ID == created.Application.ID {
			found = true
			assert.Equal(t, "interview", a.Status)
		}
	}
	assert.True(t, found)
}

// TestMessagingFlow exercises the read-receipt semantics over HTTP: unread
// counts only drop when the receiver opens the conversation.
func TestMessagingFlow(t *testing.T) {
	s := newTestServer(t)

	seekerCookie := s.login("sarahjohnson")
	employerCookie := s.login("techcorp")

	_, env := s.do(http.MethodGet, "/api/users/me", employerCookie, nil)
	var employer struct {
		User struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &employer))

	_, env = s.do(http.MethodGet, "/api/users/me", seekerCookie, nil)
	var seeker struct {
		User struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &seeker))

	rec, _ := s.do(http.MethodPost, "/api/messages", seekerCookie, gin.H{
		"receiver_id": employer.User.ID,
		"content":     "Following up on my application",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// The employer's inbox shows the unread message.
	_, env = s.do(http.MethodGet, "/api/messages", employerCookie, nil)
	var inbox struct {
		Conversations []struct {
			PartnerID   int64 `json:"partner_id"`
			UnreadCount int   `json:"unread_count"`
		} `json:"conversations"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &inbox))

	var unreadBefore int
	for _, c := range inbox.Conversations {
		if c.PartnerID == seeker.User.ID {
			unreadBefore = c.UnreadCount
		}
	}
	assert.Greater(t, unreadBefore, 0)

	// Opening the conversation marks it read.
	rec, env = s.do(http.MethodGet, fmt.Sprintf("/api/messages/%d", seeker.User.ID), employerCookie, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var convo struct {
		Messages []struct {
			SenderID int64 `json:"sender_id"`
			Read     bool  `json:"read"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &convo))
	require.NotEmpty(t, convo.Messages)

	_, env = s.do(http.MethodGet, "/api/messages", employerCookie, nil)
	require.NoError(t, json.Unmarshal(env.Data, &inbox))
	for _, c := range inbox.Conversations {
		if c.PartnerID == seeker.User.ID {
			assert.Zero(t, c.UnreadCount)
		}
	}
}

func TestBookmarkEndpoints(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login("sarahjohnson")

	rec, _ := s.do(http.MethodPost, "/api/bookmarks", cookie, gin.H{"video_id": int64(1)})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := s.do(http.MethodGet, "/api/bookmarks/1", cookie, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status struct {
		IsBookmarked bool `json:"is_bookmarked"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.True(t, status.IsBookmarked)

	rec, _ = s.do(http.MethodDelete, "/api/bookmarks/1", cookie, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Deleting again still succeeds.
	rec, _ = s.do(http.MethodDelete, "/api/bookmarks/1", cookie, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUploadsUnavailableWithoutStore(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login("sarahjohnson")

	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	req.Header.Set("Cookie", cookie)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
