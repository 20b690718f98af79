package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"homestore-backend-go/internal/db"
	"homestore-backend-go/internal/models"
)

func newAuthServiceForTest() (AuthService, *MockIdentityClient, *MockUserRepository) {
	identity := new(MockIdentityClient)
	userRepo := new(MockUserRepository)
	return NewAuthService(identity, userRepo), identity, userRepo
}

func TestVerifyToken_Success(t *testing.T) {
	svc, identity, _ := newAuthServiceForTest()
	ctx := context.Background()

	identity.On("VerifyIDTokenAndCheckRevoked", ctx, "good-token").Return(&auth.Token{
		UID: "uid-1",
		Claims: map[string]interface{}{
			"email": "a@example.com",
			"name":  "Alice",
		},
	}, nil)

	id, err := svc.VerifyToken(ctx, "good-token")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", id.UID)
	assert.Equal(t, "a@example.com", id.Email)
	assert.Equal(t, "Alice", id.DisplayName)
}

func TestVerifyToken_EmptyToken(t *testing.T) {
	svc, identity, _ := newAuthServiceForTest()

	_, err := svc.VerifyToken(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidToken)
	identity.AssertNotCalled(t, "VerifyIDTokenAndCheckRevoked", mock.Anything, mock.Anything)
}

func TestVerifyToken_ProviderErrorSurfaces(t *testing.T) {
	svc, identity, _ := newAuthServiceForTest()
	ctx := context.Background()

	providerErr := errors.New("transport unavailable")
	identity.On("VerifyIDTokenAndCheckRevoked", ctx, "some-token").Return(nil, providerErr)

	_, err := svc.VerifyToken(ctx, "some-token")
	require.Error(t, err)
	// An unclassified provider failure is not reported as a bad token.
	assert.NotErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, providerErr)
}

func TestRegister_MirrorsProfile(t *testing.T) {
	svc, identity, userRepo := newAuthServiceForTest()
	ctx := context.Background()

	identity.On("CreateUser", ctx, mock.Anything).Return(&auth.UserRecord{
		UserInfo: &auth.UserInfo{UID: "uid-1", Email: "a@example.com", DisplayName: "Alice"},
	}, nil)
	userRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.ID == "uid-1" && u.Email == "a@example.com" && u.HouseholdID == nil
	})).Return(nil)

	account, err := svc.Register(ctx, "a@example.com", "secret123", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", account.UID)
	assert.Equal(t, "a@example.com", account.Email)
	userRepo.AssertExpectations(t)
}

func TestRegister_ToleratesReplayedProfileWrite(t *testing.T) {
	svc, identity, userRepo := newAuthServiceForTest()
	ctx := context.Background()

	identity.On("CreateUser", ctx, mock.Anything).Return(&auth.UserRecord{
		UserInfo: &auth.UserInfo{UID: "uid-1", Email: "a@example.com"},
	}, nil)
	userRepo.On("Create", ctx, mock.Anything).Return(fmt.Errorf("dup: %w", db.ErrAlreadyExists))

	account, err := svc.Register(ctx, "a@example.com", "secret123", "")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", account.UID)
}

func TestRegister_ProfileWriteFailureIsFatal(t *testing.T) {
	svc, identity, userRepo := newAuthServiceForTest()
	ctx := context.Background()

	identity.On("CreateUser", ctx, mock.Anything).Return(&auth.UserRecord{
		UserInfo: &auth.UserInfo{UID: "uid-1", Email: "a@example.com"},
	}, nil)
	userRepo.On("Create", ctx, mock.Anything).Return(errors.New("firestore unavailable"))

	_, err := svc.Register(ctx, "a@example.com", "secret123", "")
	assert.Error(t, err)
}

func TestSendPasswordReset_Success(t *testing.T) {
	svc, identity, _ := newAuthServiceForTest()
	ctx := context.Background()
	identity.On("PasswordResetLink", ctx, "a@example.com").Return("https://reset.example.com/x", nil)

	assert.NoError(t, svc.SendPasswordReset(ctx, "a@example.com"))
}

func TestSendPasswordReset_ProviderFailure(t *testing.T) {
	svc, identity, _ := newAuthServiceForTest()
	ctx := context.Background()
	identity.On("PasswordResetLink", ctx, "a@example.com").Return("", errors.New("quota exceeded"))

	assert.Error(t, svc.SendPasswordReset(ctx, "a@example.com"))
}
