package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"homestore-backend-go/internal/core"
)

// envelope mirrors the response envelope in internal/api. It is defined
// locally to avoid an import cycle with that package.
type envelope struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data"`
	Error   *envelopeErr `json:"error"`
}

type envelopeErr struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func abortUnauthenticated(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, envelope{Success: false, Data: nil, Error: &envelopeErr{Code: code, Message: message}})
}

// AuthMiddleware provides Gin middleware for bearer-token authentication.
type AuthMiddleware struct {
	authService core.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware instance. It panics if the
// AuthService is nil, as protected routes cannot function without it.
func NewAuthMiddleware(as core.AuthService) *AuthMiddleware {
	if as == nil {
		panic("AuthService is not initialized for AuthMiddleware")
	}
	return &AuthMiddleware{authService: as}
}

// RequireAuth verifies the Authorization bearer token before the handler
// body runs. A missing or malformed header fails closed with UNAUTHENTICATED;
// verification failures keep their classification (revoked token, disabled
// user, invalid token). On success the caller's identity is attached to the
// Gin context for downstream handlers.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c, http.StatusUnauthorized, "UNAUTHENTICATED", "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthenticated(c, http.StatusUnauthorized, "UNAUTHENTICATED", "Authorization header format must be 'Bearer {token}'")
			return
		}

		identity, err := m.authService.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, core.ErrTokenRevoked):
				abortUnauthenticated(c, http.StatusUnauthorized, "TOKEN_REVOKED", "authentication token has been revoked")
			case errors.Is(err, core.ErrUserDisabled):
				abortUnauthenticated(c, http.StatusUnauthorized, "USER_DISABLED", "user account is disabled")
			case errors.Is(err, core.ErrInvalidToken):
				abortUnauthenticated(c, http.StatusUnauthorized, "INVALID_TOKEN", "invalid or expired authentication token")
			default:
				log.Printf("AuthMiddleware: unexpected error verifying token: %v", err)
				abortUnauthenticated(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", err.Error())
			}
			return
		}

		c.Set("userID", identity.UID)
		if identity.Email != "" {
			c.Set("userEmail", identity.Email)
		}
		if identity.DisplayName != "" {
			c.Set("userDisplayName", identity.DisplayName)
		}

		c.Next()
	}
}
