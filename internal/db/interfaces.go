package db

import (
	"context"

	"homestore-backend-go/internal/models"
)

// UserRepository defines the interface for user profile storage operations.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	// GetByEmail returns the first profile matching the email equality filter.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// HouseholdRepository defines the interface for household storage operations.
type HouseholdRepository interface {
	// CreateWithOwner creates the household document and sets the owner's
	// profile householdId in a single atomic write. Returns the new ID.
	CreateWithOwner(ctx context.Context, household *models.Household) (string, error)
	GetByID(ctx context.Context, householdID string) (*models.Household, error)
}

// RoomRepository defines the interface for room storage operations.
// Rooms live in a subcollection of their household document.
type RoomRepository interface {
	Create(ctx context.Context, householdID string, room *models.Room) (string, error)
	GetByID(ctx context.Context, householdID, roomID string) (*models.Room, error)
	ListByHousehold(ctx context.Context, householdID string) ([]*models.Room, error)
	// Update applies the given field values to the room document.
	Update(ctx context.Context, householdID, roomID string, fields map[string]interface{}) (*models.Room, error)
	// DeleteWithItems atomically deletes the room and every item of the
	// household located in it. Returns the number of items removed.
	DeleteWithItems(ctx context.Context, householdID, roomID string) (int, error)
}

// ItemRepository defines the interface for item storage operations.
type ItemRepository interface {
	// Create writes the item and returns the stored document, including the
	// assigned ID and the committed server timestamp.
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	GetByID(ctx context.Context, itemID string) (*models.Item, error)
	ListByHousehold(ctx context.Context, householdID string) ([]*models.Item, error)
	// UpdateFields applies the given field values and refreshes lastUpdated
	// with a server timestamp, returning the stored document.
	UpdateFields(ctx context.Context, itemID string, fields map[string]interface{}) (*models.Item, error)
	Delete(ctx context.Context, itemID string) error
	// CreateBatch writes all items in one atomic batch. All or nothing.
	CreateBatch(ctx context.Context, items []*models.Item) (int, error)
}

// AuditRepository defines the interface for audit log storage operations.
type AuditRepository interface {
	Create(ctx context.Context, logEntry models.AuditLog) error
}
