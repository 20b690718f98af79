package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homestore-backend-go/internal/core"
	"homestore-backend-go/internal/models"
)

// ItemHandler handles item endpoints.
type ItemHandler struct {
	itemService core.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(is core.ItemService) *ItemHandler {
	return &ItemHandler{itemService: is}
}

// CreateItem handles POST /api/items.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	var req models.CreateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), uid, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, item)
}

// ListItems handles GET /api/items. A caller without a household gets an
// empty list.
func (h *ItemHandler) ListItems(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	items, err := h.itemService.List(c.Request.Context(), uid)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, items)
}

// GetItem handles GET /api/items/:itemId.
func (h *ItemHandler) GetItem(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	item, err := h.itemService.GetByID(c.Request.Context(), uid, c.Param("itemId"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, item)
}

// UpdateItem handles PUT /api/items/:itemId.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	var req models.UpdateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), uid, c.Param("itemId"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, item)
}

// DeleteItem handles DELETE /api/items/:itemId.
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), uid, c.Param("itemId")); err != nil {
		mapServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, MessageData{Message: "Item deleted."})
}

// BulkImportItems handles POST /api/items/bulk. The CSV comes in as the
// multipart form field `file`; the valid rows are committed atomically and
// only their count is returned.
func (h *ItemHandler) BulkImportItems(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "multipart form field 'file' is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "uploaded file could not be read")
		return
	}
	defer file.Close()

	count, err := h.itemService.BulkImport(c.Request.Context(), uid, file)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, BulkImportData{Count: count})
}
