package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homestore-backend-go/internal/core"
	"homestore-backend-go/internal/models"
)

// UserHandler handles user-profile endpoints.
type UserHandler struct {
	userService core.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// EnsureUser handles POST /api/users. It mirrors an identity-provider user
// record into the profile store; replaying the call for an existing profile
// succeeds with 200 instead of 201 and changes nothing.
func (h *UserHandler) EnsureUser(c *gin.Context) {
	var req models.EnsureUserRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.UID == "" || req.Email == "" {
		respondError(c, http.StatusBadRequest, "MISSING_FIELDS", "uid and email are required.")
		return
	}

	user, created, err := h.userService.EnsureProfile(c.Request.Context(), req.UID, req.Email, req.DisplayName)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if created {
		respondSuccess(c, http.StatusCreated, user)
	} else {
		respondSuccess(c, http.StatusOK, user)
	}
}

// GetProfile handles GET /api/profile for the authenticated caller.
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), uid)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, user)
}
