package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homestore-backend-go/internal/core"
	"homestore-backend-go/internal/models"
)

// HouseholdHandler handles household endpoints.
type HouseholdHandler struct {
	householdService core.HouseholdService
}

// NewHouseholdHandler creates a new HouseholdHandler.
func NewHouseholdHandler(hs core.HouseholdService) *HouseholdHandler {
	return &HouseholdHandler{householdService: hs}
}

// CreateHousehold handles POST /api/households.
func (h *HouseholdHandler) CreateHousehold(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	var req models.CreateHouseholdRequest
	if !bindJSON(c, &req) {
		return
	}

	household, err := h.householdService.Create(c.Request.Context(), uid, req.Name)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, household)
}

// GetHousehold handles GET /api/households/:householdId.
func (h *HouseholdHandler) GetHousehold(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	householdID := c.Param("householdId")

	household, err := h.householdService.GetByID(c.Request.Context(), uid, householdID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, household)
}
