package usecase

import (
	"context"
	"errors"

	"reelhire-backend/internal/domain"
	"reelhire-backend/pkg/apperror"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// Register creates a new account. Username and email must be unused; the
// store is left untouched when either check fails.
func (uc *authUsecase) Register(ctx context.Context, user *domain.User, plainPassword string) (*domain.User, error) {
	if user.UserType != domain.UserTypeJobSeeker && user.UserType != domain.UserTypeEmployer {
		return nil, apperror.BadRequest("User type must be job_seeker or employer")
	}

	if existing, err := uc.userRepo.GetByUsername(ctx, user.Username); err == nil && existing != nil {
		return nil, apperror.Conflict("Username already taken")
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, user.Email); err == nil && existing != nil {
		return nil, apperror.Conflict("Email already in use")
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.Password = string(hash)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// Login verifies credentials. The error is the same for an unknown username
// and a wrong password.
func (uc *authUsecase) Login(ctx context.Context, username, plainPassword string) (*domain.User, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid credentials")
		}
		return nil, apperror.Internal(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(plainPassword)) != nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	return user, nil
}

func (uc *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	return uc.GetUser(ctx, id)
}

func (uc *authUsecase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// UpdateProfile applies a partial profile update to the caller's own record.
func (uc *authUsecase) UpdateProfile(ctx context.Context, id int64, update *domain.UserUpdate) (*domain.User, error) {
	user, err := uc.userRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
