package core

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"homestore-backend-go/internal/db"
	"homestore-backend-go/internal/models"
)

// itemService implements the ItemService interface.
type itemService struct {
	itemRepo     db.ItemRepository
	roomRepo     db.RoomRepository
	userRepo     db.UserRepository
	auditService AuditService
}

// NewItemService creates a new ItemService instance.
func NewItemService(ir db.ItemRepository, rr db.RoomRepository, ur db.UserRepository, as AuditService) ItemService {
	return &itemService{
		itemRepo:     ir,
		roomRepo:     rr,
		userRepo:     ur,
		auditService: as,
	}
}

// resolveHousehold returns the caller's household ID, failing with
// ErrUserNotInHousehold when the caller has no profile or no household.
func (s *itemService) resolveHousehold(ctx context.Context, callerUserID string) (string, error) {
	profile, err := s.userRepo.GetByID(ctx, callerUserID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return "", fmt.Errorf("%w: uid '%s'", ErrUserNotInHousehold, callerUserID)
		}
		return "", fmt.Errorf("failed to get profile for uid '%s': %w", callerUserID, err)
	}
	if profile.HouseholdID == nil || *profile.HouseholdID == "" {
		return "", fmt.Errorf("%w: uid '%s'", ErrUserNotInHousehold, callerUserID)
	}
	return *profile.HouseholdID, nil
}

// validateLocation checks the referenced room inside the household and the
// bin range [1, room.NBins].
func (s *itemService) validateLocation(ctx context.Context, householdID string, loc models.ItemLocation) error {
	room, err := s.roomRepo.GetByID(ctx, householdID, loc.RoomID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: id '%s'", ErrRoomNotFound, loc.RoomID)
		}
		return fmt.Errorf("failed to get room '%s': %w", loc.RoomID, err)
	}
	if loc.BinNumber > room.NBins {
		return fmt.Errorf("%w: bin %d, room '%s' has %d bins", ErrBinOutOfRange, loc.BinNumber, room.Name, room.NBins)
	}
	return nil
}

// Create validates the request, derives the household from the caller's
// profile (never from the client) and writes the item. The returned item
// carries the assigned ID and the committed server timestamp.
func (s *itemService) Create(ctx context.Context, callerUserID string, req models.CreateItemRequest) (*models.Item, error) {
	if strings.TrimSpace(req.Name) == "" || req.Location == nil {
		return nil, ErrMissingFields
	}
	if req.Location.RoomID == nil || *req.Location.RoomID == "" || req.Location.BinNumber == nil {
		return nil, ErrInvalidLocationFormat
	}
	if *req.Location.BinNumber < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBinNumber, *req.Location.BinNumber)
	}

	status := models.ItemStatusStored
	if req.Status != nil {
		status = *req.Status
		if !models.ValidItemStatus(status) {
			return nil, fmt.Errorf("%w: got '%s'", ErrInvalidStatus, status)
		}
	}
	isPrivate := false
	if req.IsPrivate != nil {
		isPrivate = *req.IsPrivate
	}

	householdID, err := s.resolveHousehold(ctx, callerUserID)
	if err != nil {
		return nil, err
	}

	location := models.ItemLocation{
		RoomID:    *req.Location.RoomID,
		BinNumber: *req.Location.BinNumber,
	}
	if err := s.validateLocation(ctx, householdID, location); err != nil {
		return nil, err
	}

	item := &models.Item{
		Name:          strings.TrimSpace(req.Name),
		Location:      location,
		Status:        status,
		CreatorUserID: callerUserID,
		HouseholdID:   householdID,
		IsPrivate:     isPrivate,
		Metadata:      req.Metadata,
	}

	stored, err := s.itemRepo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create item '%s': %w", item.Name, err)
	}
	return stored, nil
}

// authorize loads the item and checks the caller against it: the caller must
// belong to the item's household, and a private item is only visible to its
// creator. This mirrors the store's declarative rules as a fail-fast check.
func (s *itemService) authorize(ctx context.Context, callerUserID, itemID string) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: id '%s'", ErrItemNotFound, itemID)
		}
		return nil, fmt.Errorf("failed to get item '%s': %w", itemID, err)
	}

	profile, err := s.userRepo.GetByID(ctx, callerUserID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: uid '%s'", ErrForbiddenHousehold, callerUserID)
		}
		return nil, fmt.Errorf("failed to get profile for uid '%s': %w", callerUserID, err)
	}
	if profile.HouseholdID == nil || *profile.HouseholdID != item.HouseholdID {
		return nil, fmt.Errorf("%w: uid '%s', item '%s'", ErrForbiddenHousehold, callerUserID, itemID)
	}
	if item.IsPrivate && item.CreatorUserID != callerUserID {
		return nil, fmt.Errorf("%w: uid '%s', item '%s'", ErrForbiddenPrivate, callerUserID, itemID)
	}

	return item, nil
}

// GetByID retrieves a single item, subject to household and privacy checks.
func (s *itemService) GetByID(ctx context.Context, callerUserID, itemID string) (*models.Item, error) {
	return s.authorize(ctx, callerUserID, itemID)
}

// List returns every item of the caller's household. A caller without a
// household gets an empty list, never an error. Private items of other
// members are not filtered here; the store's access rules own that split.
func (s *itemService) List(ctx context.Context, callerUserID string) ([]*models.Item, error) {
	householdID, err := s.resolveHousehold(ctx, callerUserID)
	if err != nil {
		if errors.Is(err, ErrUserNotInHousehold) {
			return []*models.Item{}, nil
		}
		return nil, err
	}

	items, err := s.itemRepo.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items for household '%s': %w", householdID, err)
	}
	return items, nil
}

// Update patches an item. Only name, location, status, isPrivate and
// metadata are patchable; householdId and creatorUserId never change. A
// patched location is re-validated against the item's existing household.
func (s *itemService) Update(ctx context.Context, callerUserID, itemID string, req models.UpdateItemRequest) (*models.Item, error) {
	item, err := s.authorize(ctx, callerUserID, itemID)
	if err != nil {
		return nil, err
	}

	if !req.HasFields() {
		return nil, ErrNoUpdateFields
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrMissingFields
		}
		fields["name"] = name
	}
	if req.Status != nil {
		if !models.ValidItemStatus(*req.Status) {
			return nil, fmt.Errorf("%w: got '%s'", ErrInvalidStatus, *req.Status)
		}
		fields["status"] = *req.Status
	}
	if req.IsPrivate != nil {
		fields["isPrivate"] = *req.IsPrivate
	}
	if req.Metadata != nil {
		fields["metadata"] = *req.Metadata
	}
	if req.Location != nil {
		if req.Location.RoomID == nil || *req.Location.RoomID == "" || req.Location.BinNumber == nil {
			return nil, ErrInvalidLocationFormat
		}
		if *req.Location.BinNumber < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidBinNumber, *req.Location.BinNumber)
		}
		location := models.ItemLocation{
			RoomID:    *req.Location.RoomID,
			BinNumber: *req.Location.BinNumber,
		}
		// The item's stored household is authoritative here, never a
		// client-supplied one.
		if err := s.validateLocation(ctx, item.HouseholdID, location); err != nil {
			return nil, err
		}
		fields["location"] = location
	}

	updated, err := s.itemRepo.UpdateFields(ctx, itemID, fields)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: id '%s'", ErrItemNotFound, itemID)
		}
		return nil, fmt.Errorf("failed to update item '%s': %w", itemID, err)
	}
	return updated, nil
}

// Delete removes an item after the same checks as Update.
func (s *itemService) Delete(ctx context.Context, callerUserID, itemID string) error {
	if _, err := s.authorize(ctx, callerUserID, itemID); err != nil {
		return err
	}
	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete item '%s': %w", itemID, err)
	}
	return nil
}

// bulkRoom is the preloaded room lookup entry used by BulkImport.
type bulkRoom struct {
	id    string
	nBins int
}

// BulkImport parses a CSV stream with a header row and imports the valid
// rows as new items in one atomic batch. Required columns: name, roomName,
// binNumber; optional: status, isPrivate, category, notes. Invalid rows are
// dropped silently; only the committed count is reported back.
func (s *itemService) BulkImport(ctx context.Context, callerUserID string, csvData io.Reader) (int, error) {
	householdID, err := s.resolveHousehold(ctx, callerUserID)
	if err != nil {
		return 0, err
	}

	rooms, err := s.roomRepo.ListByHousehold(ctx, householdID)
	if err != nil {
		return 0, fmt.Errorf("failed to preload rooms for household '%s': %w", householdID, err)
	}
	roomsByName := make(map[string]bulkRoom, len(rooms))
	for _, room := range rooms {
		roomsByName[room.Name] = bulkRoom{id: room.ID, nBins: room.NBins}
	}

	reader := csv.NewReader(csvData)
	reader.FieldsPerRecord = -1 // ragged rows are handled per-row below
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, ErrNoValidItems
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	cell := func(record []string, column string) string {
		idx, ok := columns[column]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var items []*models.Item
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A malformed row is no different from an invalid one: skip it.
			continue
		}

		name := cell(record, "name")
		roomName := cell(record, "roomName")
		binCell := cell(record, "binNumber")
		if name == "" || roomName == "" || binCell == "" {
			continue
		}

		room, ok := roomsByName[roomName]
		if !ok {
			continue
		}
		binNumber, err := strconv.Atoi(binCell)
		if err != nil || binNumber < 1 || binNumber > room.nBins {
			continue
		}

		status := strings.ToUpper(cell(record, "status"))
		if status == "" {
			status = models.ItemStatusStored
		}
		if !models.ValidItemStatus(status) {
			continue
		}

		item := &models.Item{
			Name: name,
			Location: models.ItemLocation{
				RoomID:    room.id,
				BinNumber: binNumber,
			},
			Status:        status,
			CreatorUserID: callerUserID,
			HouseholdID:   householdID,
			IsPrivate:     strings.EqualFold(cell(record, "isPrivate"), "true"),
		}
		metadata := make(map[string]string)
		if category := cell(record, "category"); category != "" {
			metadata["category"] = category
		}
		if notes := cell(record, "notes"); notes != "" {
			metadata["notes"] = notes
		}
		if len(metadata) > 0 {
			item.Metadata = metadata
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return 0, ErrNoValidItems
	}

	count, err := s.itemRepo.CreateBatch(ctx, items)
	if err != nil {
		return 0, fmt.Errorf("failed to import %d items: %w", len(items), err)
	}

	auditEntry := models.AuditLog{
		UserID:     callerUserID,
		Action:     "ITEM_BULK_IMPORT",
		TargetType: "ITEM",
		Details: map[string]interface{}{
			"householdId": householdID,
			"count":       count,
		},
	}
	if auditErr := s.auditService.CreateAuditLog(ctx, auditEntry); auditErr != nil {
		log.Printf("Warning: failed to create audit log for ITEM_BULK_IMPORT (household: %s): %v", householdID, auditErr)
	}

	return count, nil
}
