package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"firebase.google.com/go/v4/auth"

	"homestore-backend-go/internal/db"
	"homestore-backend-go/internal/models"
)

// identityClient is the narrow slice of the Firebase Auth client the
// AuthService consumes. *auth.Client satisfies it; tests substitute a mock.
type identityClient interface {
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	PasswordResetLink(ctx context.Context, email string) (string, error)
}

// authService implements the AuthService interface on top of Firebase Auth.
type authService struct {
	identity identityClient
	userRepo db.UserRepository
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(identity identityClient, userRepo db.UserRepository) AuthService {
	if identity == nil {
		panic("AuthService requires a non-nil identity client")
	}
	return &authService{
		identity: identity,
		userRepo: userRepo,
	}
}

// VerifyToken verifies a bearer token with the identity provider and
// classifies failures: revoked token, disabled account, or plain
// invalid/expired token. Any other provider error is surfaced as-is and
// becomes an internal error at the handler boundary.
func (s *authService) VerifyToken(ctx context.Context, idToken string) (*Identity, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, ErrInvalidToken
	}

	token, err := s.identity.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		switch {
		case auth.IsIDTokenRevoked(err):
			return nil, fmt.Errorf("%w: %s", ErrTokenRevoked, err)
		case auth.IsUserDisabled(err):
			return nil, fmt.Errorf("%w: %s", ErrUserDisabled, err)
		case auth.IsIDTokenInvalid(err) || auth.IsIDTokenExpired(err):
			return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
		default:
			return nil, fmt.Errorf("token verification failed: %w", err)
		}
	}

	identity := &Identity{
		UID:    token.UID,
		Claims: token.Claims,
	}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	// "name" is the standard display-name claim in Firebase ID tokens.
	if name, ok := token.Claims["name"].(string); ok {
		identity.DisplayName = name
	}

	return identity, nil
}

// Register creates the account with the identity provider and mirrors the
// profile into the users collection with a null householdId. A duplicate
// email surfaces as ErrEmailExists.
func (s *authService) Register(ctx context.Context, email, password, displayName string) (*RegisteredAccount, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	record, err := s.identity.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, fmt.Errorf("%w: %s", ErrEmailExists, email)
		}
		return nil, fmt.Errorf("failed to create account for '%s': %w", email, err)
	}

	profile := &models.User{
		ID:          record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		HouseholdID: nil,
	}
	if err := s.userRepo.Create(ctx, profile); err != nil {
		// A replayed profile write is tolerated so the registration trigger
		// can be retried safely.
		if !errors.Is(err, db.ErrAlreadyExists) {
			return nil, fmt.Errorf("account created but profile write failed for uid '%s': %w", record.UID, err)
		}
	}

	return &RegisteredAccount{UID: record.UID, Email: record.Email}, nil
}

// SendPasswordReset asks the identity provider to issue a reset link.
// An unknown email is swallowed so the caller cannot probe for accounts;
// the handler returns the identical generic message on both paths.
func (s *authService) SendPasswordReset(ctx context.Context, email string) error {
	if _, err := s.identity.PasswordResetLink(ctx, email); err != nil {
		if auth.IsUserNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to trigger password reset for '%s': %w", email, err)
	}
	return nil
}
