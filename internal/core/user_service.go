package core

import (
	"context"
	"errors"
	"fmt"

	"homestore-backend-go/internal/db"
	"homestore-backend-go/internal/models"
)

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// GetByID retrieves a user profile by its Firebase Auth UID.
func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: uid '%s'", ErrUserProfileNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user by ID '%s' from repository: %w", userID, err)
	}
	return user, nil
}

// GetByEmail retrieves the first user profile matching the email.
func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: email '%s'", ErrUserProfileNotFound, email)
		}
		return nil, fmt.Errorf("failed to get user by email '%s' from repository: %w", email, err)
	}
	return user, nil
}

// EnsureProfile creates the profile document if it does not exist yet.
// If a profile is already present for the UID it is returned unmodified, so
// identity-provider triggers can be replayed without side effects.
func (s *userService) EnsureProfile(ctx context.Context, userID, email, displayName string) (*models.User, bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up profile for uid '%s': %w", userID, err)
	}

	newUser := &models.User{
		ID:          userID,
		Email:       email,
		DisplayName: displayName,
		HouseholdID: nil,
	}
	if createErr := s.userRepo.Create(ctx, newUser); createErr != nil {
		if errors.Is(createErr, db.ErrAlreadyExists) {
			// Lost a race with a concurrent replay; the profile exists now.
			existing, getErr := s.userRepo.GetByID(ctx, userID)
			if getErr != nil {
				return nil, false, fmt.Errorf("profile for uid '%s' appeared concurrently but could not be read: %w", userID, getErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create profile for uid '%s': %w", userID, createErr)
	}

	return newUser, true, nil
}
