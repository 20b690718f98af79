package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homestore-backend-go/internal/core"
	"homestore-backend-go/internal/models"
)

// RoomHandler handles room endpoints, nested under a household.
type RoomHandler struct {
	roomService core.RoomService
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(rs core.RoomService) *RoomHandler {
	return &RoomHandler{roomService: rs}
}

// CreateRoom handles POST /api/households/:householdId/rooms.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	householdID := c.Param("householdId")

	var req models.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	room, err := h.roomService.Create(c.Request.Context(), uid, householdID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, room)
}

// ListRooms handles GET /api/households/:householdId/rooms.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	householdID := c.Param("householdId")

	rooms, err := h.roomService.List(c.Request.Context(), uid, householdID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, rooms)
}

// GetRoom handles GET /api/households/:householdId/rooms/:roomId.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	room, err := h.roomService.GetByID(c.Request.Context(), uid, c.Param("householdId"), c.Param("roomId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, room)
}

// UpdateRoom handles PUT /api/households/:householdId/rooms/:roomId.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	var req models.UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	room, err := h.roomService.Update(c.Request.Context(), uid, c.Param("householdId"), c.Param("roomId"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/households/:householdId/rooms/:roomId.
// Deletion cascades to every item stored in the room.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	if err := h.roomService.Delete(c.Request.Context(), uid, c.Param("householdId"), c.Param("roomId")); err != nil {
		mapServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, MessageData{Message: "Room and its items deleted."})
}
