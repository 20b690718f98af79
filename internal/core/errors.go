package core

import "errors"

// Sentinel errors returned by the core services. Handlers map these to HTTP
// statuses and envelope error codes; anything not listed here surfaces as an
// internal server error.
var (
	// Authentication (AuthService)
	ErrInvalidToken = errors.New("invalid or expired authentication token")
	ErrTokenRevoked = errors.New("authentication token has been revoked")
	ErrUserDisabled = errors.New("user account is disabled")
	ErrEmailExists  = errors.New("the email address is already in use by another account")

	// Profiles (UserService)
	ErrUserProfileNotFound = errors.New("user profile not found")

	// Households
	ErrMissingHouseholdName = errors.New("household name is required")
	ErrAlreadyInHousehold   = errors.New("user already belongs to a household")
	ErrHouseholdNotFound    = errors.New("household not found")

	// Membership and ownership
	ErrForbidden          = errors.New("caller is not a member of this household")
	ErrForbiddenHousehold = errors.New("item does not belong to the caller's household")
	ErrForbiddenPrivate   = errors.New("item is private to its creator")

	// Rooms
	ErrRoomNotFound = errors.New("room not found")
	ErrInvalidNBins = errors.New("nBins must be a positive integer")

	// Items
	ErrMissingFields         = errors.New("required fields are missing")
	ErrInvalidLocationFormat = errors.New("location must be an object with roomId and binNumber")
	ErrInvalidBinNumber      = errors.New("binNumber must be a positive integer")
	ErrInvalidStatus         = errors.New("status must be one of STORED, OUT")
	ErrBinOutOfRange         = errors.New("binNumber exceeds the room's bin count")
	ErrUserNotInHousehold    = errors.New("user does not belong to a household")
	ErrItemNotFound          = errors.New("item not found")
	ErrNoUpdateFields        = errors.New("no updatable fields provided")
	ErrNoValidItems          = errors.New("no valid items found in the uploaded file")
)
