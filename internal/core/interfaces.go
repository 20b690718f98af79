package core

import (
	"context"
	"io"

	"homestore-backend-go/internal/models"
)

// Identity is the verified identity attached to an authenticated request.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
	Claims      map[string]interface{}
}

// RegisteredAccount is the result of a successful account registration.
type RegisteredAccount struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// AuthService wraps the identity provider: token verification, account
// creation and password-reset triggering.
type AuthService interface {
	VerifyToken(ctx context.Context, idToken string) (*Identity, error)
	// Register creates the identity-provider account and mirrors the
	// profile into the users collection.
	Register(ctx context.Context, email, password, displayName string) (*RegisteredAccount, error)
	// SendPasswordReset never reveals whether the account exists; an
	// unknown email is not an error.
	SendPasswordReset(ctx context.Context, email string) error
}

// UserService defines the interface for user-profile operations.
type UserService interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// EnsureProfile creates the profile if absent. The bool reports whether
	// a new profile was created; replaying the call is safe.
	EnsureProfile(ctx context.Context, userID, email, displayName string) (*models.User, bool, error)
}

// HouseholdService defines the interface for household operations.
type HouseholdService interface {
	Create(ctx context.Context, ownerUserID, name string) (*models.Household, error)
	GetByID(ctx context.Context, callerUserID, householdID string) (*models.Household, error)
}

// RoomService defines the interface for room operations. Every operation
// requires the caller to be a member of the household.
type RoomService interface {
	Create(ctx context.Context, callerUserID, householdID string, req models.CreateRoomRequest) (*models.Room, error)
	GetByID(ctx context.Context, callerUserID, householdID, roomID string) (*models.Room, error)
	List(ctx context.Context, callerUserID, householdID string) ([]*models.Room, error)
	Update(ctx context.Context, callerUserID, householdID, roomID string, req models.UpdateRoomRequest) (*models.Room, error)
	// Delete cascades: the room and every item located in it go away together.
	Delete(ctx context.Context, callerUserID, householdID, roomID string) error
}

// ItemService defines the interface for item operations.
type ItemService interface {
	Create(ctx context.Context, callerUserID string, req models.CreateItemRequest) (*models.Item, error)
	GetByID(ctx context.Context, callerUserID, itemID string) (*models.Item, error)
	// List returns every item of the caller's household; a household-less
	// caller gets an empty list, never an error.
	List(ctx context.Context, callerUserID string) ([]*models.Item, error)
	Update(ctx context.Context, callerUserID, itemID string, req models.UpdateItemRequest) (*models.Item, error)
	Delete(ctx context.Context, callerUserID, itemID string) error
	// BulkImport parses a CSV stream, silently skips invalid rows and
	// commits the valid subset in one atomic batch. Returns the count.
	BulkImport(ctx context.Context, callerUserID string, csvData io.Reader) (int, error)
}

// AuditService defines the interface for audit logging operations.
type AuditService interface {
	CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error
}
