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

// roomService implements the RoomService interface.
type roomService struct {
	roomRepo     db.RoomRepository
	userRepo     db.UserRepository
	auditService AuditService
}

// NewRoomService creates a new RoomService instance.
func NewRoomService(rr db.RoomRepository, ur db.UserRepository, as AuditService) RoomService {
	return &roomService{
		roomRepo:     rr,
		userRepo:     ur,
		auditService: as,
	}
}

// requireMember fails with ErrForbidden unless the caller's profile carries
// exactly this household ID. This is the application-level half of the
// dual-layer authorization; the store's declarative rules remain the final gate.
func (s *roomService) requireMember(ctx context.Context, callerUserID, householdID string) error {
	profile, err := s.userRepo.GetByID(ctx, callerUserID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: uid '%s'", ErrForbidden, callerUserID)
		}
		return fmt.Errorf("failed to get profile for uid '%s': %w", callerUserID, err)
	}
	if profile.HouseholdID == nil || *profile.HouseholdID != householdID {
		return fmt.Errorf("%w: uid '%s', household '%s'", ErrForbidden, callerUserID, householdID)
	}
	return nil
}

// Create adds a room to the household. The name must be non-empty and nBins
// a positive integer.
func (s *roomService) Create(ctx context.Context, callerUserID, householdID string, req models.CreateRoomRequest) (*models.Room, error) {
	if err := s.requireMember(ctx, callerUserID, householdID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || req.NBins == nil {
		return nil, ErrMissingFields
	}
	if *req.NBins < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNBins, *req.NBins)
	}

	room := &models.Room{
		Name:  name,
		NBins: *req.NBins,
	}
	if _, err := s.roomRepo.Create(ctx, householdID, room); err != nil {
		return nil, fmt.Errorf("failed to create room '%s' in household '%s': %w", name, householdID, err)
	}

	return room, nil
}

// GetByID retrieves a single room of the household.
func (s *roomService) GetByID(ctx context.Context, callerUserID, householdID, roomID string) (*models.Room, error) {
	if err := s.requireMember(ctx, callerUserID, householdID); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, householdID, roomID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: id '%s'", ErrRoomNotFound, roomID)
		}
		return nil, fmt.Errorf("failed to get room '%s': %w", roomID, err)
	}
	return room, nil
}

// List returns all rooms of the household, unordered.
func (s *roomService) List(ctx context.Context, callerUserID, householdID string) ([]*models.Room, error) {
	if err := s.requireMember(ctx, callerUserID, householdID); err != nil {
		return nil, err
	}

	rooms, err := s.roomRepo.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms for household '%s': %w", householdID, err)
	}
	return rooms, nil
}

// Update patches a room; only name and nBins are mutable. Existing items are
// not re-validated when nBins shrinks, so an item may be left at a bin number
// the room no longer has. The intended remediation is an open decision.
func (s *roomService) Update(ctx context.Context, callerUserID, householdID, roomID string, req models.UpdateRoomRequest) (*models.Room, error) {
	if err := s.requireMember(ctx, callerUserID, householdID); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrMissingFields
		}
		fields["name"] = name
	}
	if req.NBins != nil {
		if *req.NBins < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidNBins, *req.NBins)
		}
		fields["nBins"] = *req.NBins
	}
	if len(fields) == 0 {
		return nil, ErrMissingFields
	}

	room, err := s.roomRepo.Update(ctx, householdID, roomID, fields)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: id '%s'", ErrRoomNotFound, roomID)
		}
		return nil, fmt.Errorf("failed to update room '%s': %w", roomID, err)
	}
	return room, nil
}

// Delete removes the room and cascades to every item stored in it; the
// repository commits the cascade as one atomic unit.
func (s *roomService) Delete(ctx context.Context, callerUserID, householdID, roomID string) error {
	if err := s.requireMember(ctx, callerUserID, householdID); err != nil {
		return err
	}

	deletedItems, err := s.roomRepo.DeleteWithItems(ctx, householdID, roomID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: id '%s'", ErrRoomNotFound, roomID)
		}
		return fmt.Errorf("failed to delete room '%s': %w", roomID, err)
	}

	auditEntry := models.AuditLog{
		UserID:     callerUserID,
		Action:     "ROOM_DELETE",
		TargetType: "ROOM",
		TargetID:   roomID,
		Details: map[string]interface{}{
			"householdId":  householdID,
			"itemsDeleted": deletedItems,
		},
	}
	if auditErr := s.auditService.CreateAuditLog(ctx, auditEntry); auditErr != nil {
		log.Printf("Warning: failed to create audit log for ROOM_DELETE (roomID: %s): %v", roomID, auditErr)
	}

	return nil
}
