package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homestore-backend-go/internal/core"
	"homestore-backend-go/internal/models"
)

// resetAcknowledgement is the one and only password-reset response message.
// It must be byte-identical whether or not the account exists, so that the
// endpoint cannot be used to enumerate accounts.
const resetAcknowledgement = "If an account exists for this email, a password reset link has been sent."

// AuthHandler handles the public authentication endpoints.
type AuthHandler struct {
	authService core.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as core.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// Register handles POST /api/register. It creates the identity-provider
// account and mirrors the profile into the users collection.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "MISSING_FIELDS", "Email and password are required.")
		return
	}

	account, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, account)
}

// ResetPassword handles POST /api/reset_password. The success body is
// identical regardless of whether the email belongs to an account.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	// A non-JSON body is treated the same as a missing email.
	_ = c.ShouldBindJSON(&req)
	if req.Email == "" {
		respondError(c, http.StatusBadRequest, "MISSING_EMAIL", "Email is required in the JSON payload.")
		return
	}

	if err := h.authService.SendPasswordReset(c.Request.Context(), req.Email); err != nil {
		mapServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, MessageData{Message: resetAcknowledgement})
}
