package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"reelhire-backend/internal/domain"
)

type applicationRepo struct {
	mu     sync.RWMutex
	apps   map[int64]domain.Application
	nextID int64
}

// NewApplicationRepository creates an in-memory application repository
func NewApplicationRepository() domain.ApplicationRepository {
	return &applicationRepo{apps: make(map[int64]domain.Application), nextID: 1}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	app.ID = r.nextID
	r.nextID++
	app.CreatedAt = time.Now()
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	r.apps[app.ID] = *app
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	app, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &app, nil
}

func (r *applicationRepo) GetByUser(ctx context.Context, userID int64) ([]domain.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var apps []domain.Application
	for _, app := range r.apps {
		if app.UserID == userID {
			apps = append(apps, app)
		}
	}
	sortAppsNewestFirst(apps)
	return apps, nil
}

func (r *applicationRepo) GetByEmployer(ctx context.Context, employerID int64) ([]domain.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var apps []domain.Application
	for _, app := range r.apps {
		if app.EmployerID == employerID {
			apps = append(apps, app)
		}
	}
	sortAppsNewestFirst(apps)
	return apps, nil
}

func (r *applicationRepo) CheckExists(ctx context.Context, jobVideoID, userID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, app := range r.apps {
		if app.JobVideoID == jobVideoID && app.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	app, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	app.Status = status
	r.apps[id] = app
	return &app, nil
}

func sortAppsNewestFirst(apps []domain.Application) {
	sort.Slice(apps, func(i, j int) bool {
		if apps[i].CreatedAt.Equal(apps[j].CreatedAt) {
			return apps[i].ID > apps[j].ID
		}
		return apps[i].CreatedAt.After(apps[j].CreatedAt)
	})
}
