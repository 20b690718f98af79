package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"homestore-backend-go/internal/core"
	"homestore-backend-go/internal/models"
)

// MockAuthService is a mock implementation of core.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) VerifyToken(ctx context.Context, idToken string) (*core.Identity, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.Identity), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, email, password, displayName string) (*core.RegisteredAccount, error) {
	args := m.Called(ctx, email, password, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.RegisteredAccount), args.Error(1)
}

func (m *MockAuthService) SendPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// MockUserService is a mock implementation of core.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) EnsureProfile(ctx context.Context, userID, email, displayName string) (*models.User, bool, error) {
	args := m.Called(ctx, userID, email, displayName)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.Bool(1), args.Error(2)
}

// MockHouseholdService is a mock implementation of core.HouseholdService.
type MockHouseholdService struct {
	mock.Mock
}

func (m *MockHouseholdService) Create(ctx context.Context, ownerUserID, name string) (*models.Household, error) {
	args := m.Called(ctx, ownerUserID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Household), args.Error(1)
}

func (m *MockHouseholdService) GetByID(ctx context.Context, callerUserID, householdID string) (*models.Household, error) {
	args := m.Called(ctx, callerUserID, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Household), args.Error(1)
}

// MockRoomService is a mock implementation of core.RoomService.
type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) Create(ctx context.Context, callerUserID, householdID string, req models.CreateRoomRequest) (*models.Room, error) {
	args := m.Called(ctx, callerUserID, householdID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomService) GetByID(ctx context.Context, callerUserID, householdID, roomID string) (*models.Room, error) {
	args := m.Called(ctx, callerUserID, householdID, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomService) List(ctx context.Context, callerUserID, householdID string) ([]*models.Room, error) {
	args := m.Called(ctx, callerUserID, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Room), args.Error(1)
}

func (m *MockRoomService) Update(ctx context.Context, callerUserID, householdID, roomID string, req models.UpdateRoomRequest) (*models.Room, error) {
	args := m.Called(ctx, callerUserID, householdID, roomID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomService) Delete(ctx context.Context, callerUserID, householdID, roomID string) error {
	args := m.Called(ctx, callerUserID, householdID, roomID)
	return args.Error(0)
}

// MockItemService is a mock implementation of core.ItemService.
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) Create(ctx context.Context, callerUserID string, req models.CreateItemRequest) (*models.Item, error) {
	args := m.Called(ctx, callerUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemService) GetByID(ctx context.Context, callerUserID, itemID string) (*models.Item, error) {
	args := m.Called(ctx, callerUserID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemService) List(ctx context.Context, callerUserID string) ([]*models.Item, error) {
	args := m.Called(ctx, callerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Item), args.Error(1)
}

func (m *MockItemService) Update(ctx context.Context, callerUserID, itemID string, req models.UpdateItemRequest) (*models.Item, error) {
	args := m.Called(ctx, callerUserID, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemService) Delete(ctx context.Context, callerUserID, itemID string) error {
	args := m.Called(ctx, callerUserID, itemID)
	return args.Error(0)
}

func (m *MockItemService) BulkImport(ctx context.Context, callerUserID string, csvData io.Reader) (int, error) {
	args := m.Called(ctx, callerUserID, csvData)
	return args.Int(0), args.Error(1)
}

// testServices bundles the mocked service layer behind a configured router.
type testServices struct {
	auth      *MockAuthService
	user      *MockUserService
	household *MockHouseholdService
	room      *MockRoomService
	item      *MockItemService
}

// newTestRouter builds a gin engine with the full route table on top of
// mocked services.
func newTestRouter(t *testing.T) (*gin.Engine, *testServices) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svcs := &testServices{
		auth:      new(MockAuthService),
		user:      new(MockUserService),
		household: new(MockHouseholdService),
		room:      new(MockRoomService),
		item:      new(MockItemService),
	}
	router := gin.New()
	SetupRoutes(router, zap.NewNop(), svcs.auth, svcs.user, svcs.household, svcs.room, svcs.item)
	return router, svcs
}

// authorize arranges a successful bearer-token verification for uid.
func (s *testServices) authorize(uid string) {
	s.auth.On("VerifyToken", mock.Anything, "test-token").
		Return(&core.Identity{UID: uid, Email: uid + "@example.com"}, nil)
}

// perform runs a request through the router and captures the response.
func perform(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
