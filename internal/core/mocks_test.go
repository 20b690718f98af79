package core

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/mock"

	"homestore-backend-go/internal/models"
)

// MockUserRepository is a mock implementation of db.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockHouseholdRepository is a mock implementation of db.HouseholdRepository.
type MockHouseholdRepository struct {
	mock.Mock
}

func (m *MockHouseholdRepository) CreateWithOwner(ctx context.Context, household *models.Household) (string, error) {
	args := m.Called(ctx, household)
	return args.String(0), args.Error(1)
}

func (m *MockHouseholdRepository) GetByID(ctx context.Context, householdID string) (*models.Household, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Household), args.Error(1)
}

// MockRoomRepository is a mock implementation of db.RoomRepository.
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, householdID string, room *models.Room) (string, error) {
	args := m.Called(ctx, householdID, room)
	return args.String(0), args.Error(1)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, householdID, roomID string) (*models.Room, error) {
	args := m.Called(ctx, householdID, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomRepository) ListByHousehold(ctx context.Context, householdID string) ([]*models.Room, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Room), args.Error(1)
}

func (m *MockRoomRepository) Update(ctx context.Context, householdID, roomID string, fields map[string]interface{}) (*models.Room, error) {
	args := m.Called(ctx, householdID, roomID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomRepository) DeleteWithItems(ctx context.Context, householdID, roomID string) (int, error) {
	args := m.Called(ctx, householdID, roomID)
	return args.Int(0), args.Error(1)
}

// MockItemRepository is a mock implementation of db.ItemRepository.
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) GetByID(ctx context.Context, itemID string) (*models.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) ListByHousehold(ctx context.Context, householdID string) ([]*models.Item, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Item), args.Error(1)
}

func (m *MockItemRepository) UpdateFields(ctx context.Context, itemID string, fields map[string]interface{}) (*models.Item, error) {
	args := m.Called(ctx, itemID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) Delete(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockItemRepository) CreateBatch(ctx context.Context, items []*models.Item) (int, error) {
	args := m.Called(ctx, items)
	return args.Int(0), args.Error(1)
}

// MockAuditRepository is a mock implementation of db.AuditRepository.
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Create(ctx context.Context, logEntry models.AuditLog) error {
	args := m.Called(ctx, logEntry)
	return args.Error(0)
}

// MockAuditService is a mock implementation of AuditService.
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error {
	args := m.Called(ctx, logEntry)
	return args.Error(0)
}

// MockIdentityClient is a mock implementation of the identityClient slice of
// the Firebase Auth client.
type MockIdentityClient struct {
	mock.Mock
}

func (m *MockIdentityClient) VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Token), args.Error(1)
}

func (m *MockIdentityClient) CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.UserRecord), args.Error(1)
}

func (m *MockIdentityClient) PasswordResetLink(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

// strPtr and intPtr are small helpers for building request fixtures.
func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }
