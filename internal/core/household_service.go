package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"homestore-backend-go/internal/db"
	"homestore-backend-go/internal/models"
)

// householdService implements the HouseholdService interface.
type householdService struct {
	householdRepo db.HouseholdRepository
	userRepo      db.UserRepository
	auditService  AuditService
}

// NewHouseholdService creates a new HouseholdService instance.
func NewHouseholdService(hr db.HouseholdRepository, ur db.UserRepository, as AuditService) HouseholdService {
	return &householdService{
		householdRepo: hr,
		userRepo:      ur,
		auditService:  as,
	}
}

// Create creates a household owned by the caller and stamps the caller's
// profile with the new household ID. The two writes are one atomic unit in
// the repository. A user can do this at most once: a profile that already
// carries a householdId is rejected.
func (s *householdService) Create(ctx context.Context, ownerUserID, name string) (*models.Household, error) {
	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" {
		return nil, ErrMissingHouseholdName
	}

	profile, err := s.userRepo.GetByID(ctx, ownerUserID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: uid '%s'", ErrUserProfileNotFound, ownerUserID)
		}
		return nil, fmt.Errorf("failed to get profile for uid '%s': %w", ownerUserID, err)
	}
	if profile.HouseholdID != nil && *profile.HouseholdID != "" {
		return nil, fmt.Errorf("%w: uid '%s' is in household '%s'", ErrAlreadyInHousehold, ownerUserID, *profile.HouseholdID)
	}

	household := &models.Household{
		Name:          trimmedName,
		OwnerUserID:   ownerUserID,
		MemberUserIDs: []string{ownerUserID},
	}

	householdID, err := s.householdRepo.CreateWithOwner(ctx, household)
	if err != nil {
		return nil, fmt.Errorf("failed to create household '%s': %w", trimmedName, err)
	}
	household.ID = householdID

	auditEntry := models.AuditLog{
		UserID:     ownerUserID,
		Action:     "HOUSEHOLD_CREATE",
		TargetType: "HOUSEHOLD",
		TargetID:   householdID,
		Details: map[string]interface{}{
			"name": trimmedName,
		},
	}
	if auditErr := s.auditService.CreateAuditLog(ctx, auditEntry); auditErr != nil {
		// Audit failures never fail the main operation.
		log.Printf("Warning: failed to create audit log for HOUSEHOLD_CREATE (householdID: %s): %v", householdID, auditErr)
	}

	return household, nil
}

// GetByID retrieves a household; only its members may read it.
func (s *householdService) GetByID(ctx context.Context, callerUserID, householdID string) (*models.Household, error) {
	profile, err := s.userRepo.GetByID(ctx, callerUserID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: uid '%s'", ErrUserProfileNotFound, callerUserID)
		}
		return nil, fmt.Errorf("failed to get profile for uid '%s': %w", callerUserID, err)
	}
	if profile.HouseholdID == nil || *profile.HouseholdID != householdID {
		return nil, fmt.Errorf("%w: uid '%s', household '%s'", ErrForbidden, callerUserID, householdID)
	}

	household, err := s.householdRepo.GetByID(ctx, householdID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: id '%s'", ErrHouseholdNotFound, householdID)
		}
		return nil, fmt.Errorf("failed to get household '%s': %w", householdID, err)
	}
	return household, nil
}
