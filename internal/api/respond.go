package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"homestore-backend-go/internal/core"
)

// respondSuccess writes the success envelope with the given payload.
func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, APIResponse{Success: true, Data: data, Error: nil})
}

// respondError writes the error envelope with the given code and message.
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, APIResponse{Success: false, Data: nil, Error: &APIError{Code: code, Message: message}})
}

// mapServiceError translates core sentinel errors into HTTP statuses and
// envelope error codes. Anything unrecognized becomes a 500 with the
// underlying message surfaced; acceptable for an internal tool, though it
// does leak implementation detail.
func mapServiceError(c *gin.Context, err error) {
	type mapping struct {
		sentinel error
		status   int
		code     string
	}
	mappings := []mapping{
		{core.ErrInvalidToken, http.StatusUnauthorized, "INVALID_TOKEN"},
		{core.ErrTokenRevoked, http.StatusUnauthorized, "TOKEN_REVOKED"},
		{core.ErrUserDisabled, http.StatusUnauthorized, "USER_DISABLED"},
		{core.ErrEmailExists, http.StatusBadRequest, "EMAIL_ALREADY_EXISTS"},
		{core.ErrUserProfileNotFound, http.StatusNotFound, "USER_PROFILE_NOT_FOUND"},
		{core.ErrMissingHouseholdName, http.StatusBadRequest, "MISSING_HOUSEHOLD_NAME"},
		{core.ErrAlreadyInHousehold, http.StatusBadRequest, "ALREADY_IN_HOUSEHOLD"},
		{core.ErrHouseholdNotFound, http.StatusNotFound, "HOUSEHOLD_NOT_FOUND"},
		{core.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{core.ErrForbiddenHousehold, http.StatusForbidden, "FORBIDDEN"},
		{core.ErrForbiddenPrivate, http.StatusForbidden, "FORBIDDEN"},
		{core.ErrRoomNotFound, http.StatusNotFound, "ROOM_NOT_FOUND"},
		{core.ErrInvalidNBins, http.StatusBadRequest, "INVALID_NBINS"},
		{core.ErrMissingFields, http.StatusBadRequest, "MISSING_FIELDS"},
		{core.ErrInvalidLocationFormat, http.StatusBadRequest, "INVALID_LOCATION_FORMAT"},
		{core.ErrInvalidBinNumber, http.StatusBadRequest, "INVALID_BIN_NUMBER"},
		{core.ErrInvalidStatus, http.StatusBadRequest, "INVALID_STATUS"},
		{core.ErrBinOutOfRange, http.StatusBadRequest, "BIN_NUMBER_OUT_OF_RANGE"},
		{core.ErrUserNotInHousehold, http.StatusBadRequest, "USER_NOT_IN_HOUSEHOLD"},
		{core.ErrItemNotFound, http.StatusNotFound, "ITEM_NOT_FOUND"},
		{core.ErrNoUpdateFields, http.StatusBadRequest, "NO_UPDATE_FIELDS"},
		{core.ErrNoValidItems, http.StatusBadRequest, "NO_VALID_ITEMS"},
	}

	for _, m := range mappings {
		if errors.Is(err, m.sentinel) {
			respondError(c, m.status, m.code, err.Error())
			return
		}
	}

	log.Printf("Internal Server Error: %v", err)
	respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", err.Error())
}

// bindJSON decodes the request body into req. Type mismatches are mapped to
// the field-specific validation codes so a non-integer nBins or a non-boolean
// isPrivate gets a precise error instead of a generic bad-payload one.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		switch {
		case strings.HasSuffix(field, "nBins"):
			respondError(c, http.StatusBadRequest, "INVALID_NBINS", "nBins must be an integer")
		case strings.HasSuffix(field, "binNumber"):
			respondError(c, http.StatusBadRequest, "INVALID_BIN_NUMBER", "binNumber must be an integer")
		case strings.HasSuffix(field, "isPrivate"):
			respondError(c, http.StatusBadRequest, "INVALID_ISPRIVATE", "isPrivate must be a boolean")
		case strings.HasSuffix(field, "status"):
			respondError(c, http.StatusBadRequest, "INVALID_STATUS", "status must be a string")
		case strings.HasSuffix(field, "location"):
			respondError(c, http.StatusBadRequest, "INVALID_LOCATION_FORMAT", "location must be an object with roomId and binNumber")
		default:
			respondError(c, http.StatusBadRequest, "INVALID_JSON", "request body has a field of the wrong type: "+field)
		}
		return false
	}

	respondError(c, http.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON")
	return false
}

// callerUID returns the authenticated caller's UID from the Gin context, set
// by the auth middleware. A missing UID means the middleware did not run.
func callerUID(c *gin.Context) (string, bool) {
	raw, exists := c.Get("userID")
	if !exists {
		respondError(c, http.StatusUnauthorized, "UNAUTHENTICATED", "user identity not found in request context")
		return "", false
	}
	uid, ok := raw.(string)
	if !ok || uid == "" {
		respondError(c, http.StatusUnauthorized, "UNAUTHENTICATED", "user identity not found in request context")
		return "", false
	}
	return uid, true
}
