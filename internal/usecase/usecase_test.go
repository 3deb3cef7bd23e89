package usecase_test

import (
	"context"
	"testing"

	"reelhire-backend/internal/domain"
	"reelhire-backend/internal/repository/memory"
	"reelhire-backend/internal/usecase"
	"reelhire-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, id int64, update *domain.UserUpdate) (*domain.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestRegisterRejectsTakenIdentifiers(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo)
	ctx := context.Background()

	t.Run("Should conflict on taken username", func(t *testing.T) {
		mockRepo.On("GetByUsername", ctx, "taken").Return(&domain.User{ID: 1, Username: "taken"}, nil).Once()

		_, err := uc.Register(ctx, &domain.User{Username: "taken", Email: "new@example.com", UserType: domain.UserTypeJobSeeker}, "secret1")
		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("Should conflict on taken email", func(t *testing.T) {
		mockRepo.On("GetByUsername", ctx, "fresh").Return(nil, domain.ErrNotFound).Once()
		mockRepo.On("GetByEmail", ctx, "taken@example.com").Return(&domain.User{ID: 2}, nil).Once()

		_, err := uc.Register(ctx, &domain.User{Username: "fresh", Email: "taken@example.com", UserType: domain.UserTypeJobSeeker}, "secret1")
		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("Should reject unknown user type", func(t *testing.T) {
		_, err := uc.Register(ctx, &domain.User{Username: "x", Email: "x@example.com", UserType: "ninja"}, "secret1")
		require.Error(t, err)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})
}

func TestRegisterHashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetByUsername", ctx, "sarah").Return(nil, domain.ErrNotFound).Once()
	mockRepo.On("GetByEmail", ctx, "sarah@example.com").Return(nil, domain.ErrNotFound).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()

	created, err := uc.Register(ctx, &domain.User{Username: "sarah", Email: "sarah@example.com", UserType: domain.UserTypeJobSeeker}, "password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
}

func TestLoginFailsIdentically(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo)
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	mockRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)
	mockRepo.On("GetByUsername", ctx, "sarah").Return(&domain.User{ID: 1, Username: "sarah", Password: string(hash)}, nil)

	_, unknownErr := uc.Login(ctx, "ghost", "whatever")
	_, wrongErr := uc.Login(ctx, "sarah", "wrong")

	// An attacker probing usernames sees the same 401 either way.
	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())

	user, err := uc.Login(ctx, "sarah", "right")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

// The flows below run against the in-memory stores instead of mocks so the
// interplay between repositories is exercised for real.

type fixture struct {
	stores *memory.Stores

	authUC  domain.AuthUsecase
	videoUC domain.VideoUsecase
	appUC   domain.ApplicationUsecase
	msgUC   domain.MessageUsecase
	bmUC    domain.BookmarkUsecase

	seeker   *domain.User
	employer *domain.User
	job      *domain.Video
	resume   *domain.Video
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	stores := memory.NewStores()

	f := &fixture{
		stores:  stores,
		authUC:  usecase.NewAuthUsecase(stores.Users),
		videoUC: usecase.NewVideoUsecase(stores.Videos, stores.Users, stores.Comments),
		appUC:   usecase.NewApplicationUsecase(stores.Applications, stores.Videos, stores.Users),
		msgUC:   usecase.NewMessageUsecase(stores.Messages, stores.Users),
		bmUC:    usecase.NewBookmarkUsecase(stores.Bookmarks, stores.Videos),
	}

	var err error
	f.seeker, err = f.authUC.Register(ctx, &domain.User{
		Username: "seeker", Email: "seeker@example.com", FullName: "Jo Seeker", UserType: domain.UserTypeJobSeeker,
	}, "password123")
	require.NoError(t, err)

	f.employer, err = f.authUC.Register(ctx, &domain.User{
		Username: "employer", Email: "jobs@corp.example", FullName: "Corp HR", UserType: domain.UserTypeEmployer,
	}, "password123")
	require.NoError(t, err)

	f.job, err = f.videoUC.CreateVideo(ctx, f.employer.ID, &domain.Video{
		Title: "Backend role", VideoURL: "https://cdn/job.mp4", VideoType: domain.VideoTypeJob,
	})
	require.NoError(t, err)

	f.resume, err = f.videoUC.CreateVideo(ctx, f.seeker.ID, &domain.Video{
		Title: "My resume", VideoURL: "https://cdn/resume.mp4", VideoType: domain.VideoTypeResume,
	})
	require.NoError(t, err)

	return f
}

func TestCreateVideoEnforcesRoleKind(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.videoUC.CreateVideo(ctx, f.seeker.ID, &domain.Video{
		Title: "sneaky job", VideoURL: "https://cdn/x.mp4", VideoType: domain.VideoTypeJob,
	})
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)

	_, err = f.videoUC.CreateVideo(ctx, f.employer.ID, &domain.Video{
		Title: "sneaky resume", VideoURL: "https://cdn/y.mp4", VideoType: domain.VideoTypeResume,
	})
	assert.Error(t, err)
}

func TestGetVideoCountsView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.videoUC.GetVideo(ctx, f.job.ID)
	require.NoError(t, err)
	second, err := f.videoUC.GetVideo(ctx, f.job.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Views+1, second.Views)
}

func TestRecommendShowsOppositeKind(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	forSeeker, err := f.videoUC.Recommend(ctx, f.seeker.ID, 10)
	require.NoError(t, err)
	require.NotEmpty(t, forSeeker)
	for _, v := range forSeeker {
		assert.Equal(t, domain.VideoTypeJob, v.VideoType)
		assert.NotEqual(t, f.seeker.ID, v.UserID)
	}

	forEmployer, err := f.videoUC.Recommend(ctx, f.employer.ID, 10)
	require.NoError(t, err)
	require.NotEmpty(t, forEmployer)
	for _, v := range forEmployer {
		assert.Equal(t, domain.VideoTypeResume, v.VideoType)
	}
}

func TestAddCommentBumpsCounter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.videoUC.AddComment(ctx, f.seeker.ID, f.job.ID, "What stack do you use?")
	require.NoError(t, err)

	video, err := f.stores.Videos.GetByID(ctx, f.job.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), video.Comments)

	comments, err := f.videoUC.ListComments(ctx, f.job.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "What stack do you use?", comments[0].Content)
}

func TestApplicationLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	app, err := f.appUC.Apply(ctx, f.seeker.ID, &domain.Application{
		JobVideoID:  f.job.ID,
		UserVideoID: f.resume.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	assert.Equal(t, f.employer.ID, app.EmployerID)

	t.Run("Duplicate application conflicts", func(t *testing.T) {
		_, err := f.appUC.Apply(ctx, f.seeker.ID, &domain.Application{
			JobVideoID:  f.job.ID,
			UserVideoID: f.resume.ID,
		})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("Only the owning employer may update status", func(t *testing.T) {
		_, err := f.appUC.UpdateStatus(ctx, f.seeker.ID, app.ID, domain.ApplicationStatusInterview)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)

		// The failed attempt must not have changed anything.
		unchanged, err2 := f.stores.Applications.GetByID(ctx, app.ID)
		require.NoError(t, err2)
		assert.Equal(t, domain.ApplicationStatusPending, unchanged.Status)
	})

	t.Run("Invalid status is a 400", func(t *testing.T) {
		_, err := f.appUC.UpdateStatus(ctx, f.employer.ID, app.ID, "hired-ish")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("Employer moves application to interview", func(t *testing.T) {
		updated, err := f.appUC.UpdateStatus(ctx, f.employer.ID, app.ID, domain.ApplicationStatusInterview)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusInterview, updated.Status)

		// The seeker sees the new status in their own listing.
		mine, err := f.appUC.ListForUser(ctx, f.seeker.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, domain.ApplicationStatusInterview, mine[0].Status)
	})
}

func TestApplyValidatesVideos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("Job video must be a job", func(t *testing.T) {
		_, err := f.appUC.Apply(ctx, f.seeker.ID, &domain.Application{
			JobVideoID:  f.resume.ID,
			UserVideoID: f.resume.ID,
		})
		assert.Error(t, err)
	})

	t.Run("Resume video must belong to the applicant", func(t *testing.T) {
		other, err := f.authUC.Register(ctx, &domain.User{
			Username: "other", Email: "other@example.com", UserType: domain.UserTypeJobSeeker,
		}, "password123")
		require.NoError(t, err)
		otherResume, err := f.videoUC.CreateVideo(ctx, other.ID, &domain.Video{
			Title: "not mine", VideoURL: "https://cdn/z.mp4", VideoType: domain.VideoTypeResume,
		})
		require.NoError(t, err)

		_, err = f.appUC.Apply(ctx, f.seeker.ID, &domain.Application{
			JobVideoID:  f.job.ID,
			UserVideoID: otherResume.ID,
		})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})
}

func TestMessagingFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.msgUC.Send(ctx, f.seeker.ID, f.seeker.ID, "note to self")
	assert.Error(t, err, "self-messaging is rejected")

	_, err = f.msgUC.Send(ctx, f.seeker.ID, 9999, "hello void")
	assert.Error(t, err, "receiver must exist")

	_, err = f.msgUC.Send(ctx, f.seeker.ID, f.employer.ID, "Hi, about the backend role")
	require.NoError(t, err)
	_, err = f.msgUC.Send(ctx, f.employer.ID, f.seeker.ID, "Thanks for reaching out")
	require.NoError(t, err)

	t.Run("Inbox counts unread until the conversation is opened", func(t *testing.T) {
		inbox, err := f.msgUC.ListConversations(ctx, f.seeker.ID)
		require.NoError(t, err)
		require.Len(t, inbox, 1)
		assert.Equal(t, f.employer.ID, inbox[0].PartnerID)
		assert.Equal(t, 1, inbox[0].UnreadCount)

		// Opening the conversation marks the employer's messages read.
		msgs, err := f.msgUC.GetConversation(ctx, f.seeker.ID, f.employer.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "Hi, about the backend role", msgs[0].Content)

		inbox, err = f.msgUC.ListConversations(ctx, f.seeker.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, inbox[0].UnreadCount)

		// The seeker's own message stays unread until the employer opens it.
		employerInbox, err := f.msgUC.ListConversations(ctx, f.employer.ID)
		require.NoError(t, err)
		require.Len(t, employerInbox, 1)
		assert.Equal(t, 1, employerInbox[0].UnreadCount)
	})
}

func TestBookmarkFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.bmUC.Add(ctx, f.seeker.ID, 9999)
	assert.Error(t, err, "bookmarking a missing video fails")

	first, err := f.bmUC.Add(ctx, f.seeker.ID, f.job.ID)
	require.NoError(t, err)
	second, err := f.bmUC.Add(ctx, f.seeker.ID, f.job.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	bookmarked, err := f.bmUC.IsBookmarked(ctx, f.seeker.ID, f.job.ID)
	require.NoError(t, err)
	assert.True(t, bookmarked)

	require.NoError(t, f.bmUC.Remove(ctx, f.seeker.ID, f.job.ID))
	require.NoError(t, f.bmUC.Remove(ctx, f.seeker.ID, f.job.ID))

	list, err := f.bmUC.List(ctx, f.seeker.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
