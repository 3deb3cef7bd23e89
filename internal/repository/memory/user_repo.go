package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"reelhire-backend/internal/domain"
)

type userRepo struct {
	mu     sync.RWMutex
	users  map[int64]domain.User
	nextID int64
}

// NewUserRepository creates an in-memory user repository
func NewUserRepository() domain.UserRepository {
	return &userRepo{users: make(map[int64]domain.User), nextID: 1}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	if user.Skills == nil {
		user.Skills = []string{}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Username, username) {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepo) Update(ctx context.Context, id int64, update *domain.UserUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.Headline != nil {
		user.Headline = update.Headline
	}
	if update.Bio != nil {
		user.Bio = update.Bio
	}
	if update.Location != nil {
		user.Location = update.Location
	}
	if update.ProfileImage != nil {
		user.ProfileImage = update.ProfileImage
	}
	if update.CompanyName != nil {
		user.CompanyName = update.CompanyName
	}
	if update.CompanyLogo != nil {
		user.CompanyLogo = update.CompanyLogo
	}
	if update.Skills != nil {
		user.Skills = update.Skills
	}
	if update.ResumeURL != nil {
		user.ResumeURL = update.ResumeURL
	}

	r.users[id] = user
	return &user, nil
}
