package models

// RegisterRequest is the request body for POST /api/register.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// ResetPasswordRequest is the request body for POST /api/reset_password.
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// EnsureUserRequest is the request body for POST /api/users. It mirrors the
// identity-provider user record into the profile store and is safe to replay.
type EnsureUserRequest struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// CreateHouseholdRequest is the request body for POST /api/households.
type CreateHouseholdRequest struct {
	Name string `json:"name"`
}

// CreateRoomRequest is the request body for POST /api/households/:hid/rooms.
// NBins is a pointer so a missing field can be told apart from zero.
type CreateRoomRequest struct {
	Name  string `json:"name"`
	NBins *int   `json:"nBins"`
}

// UpdateRoomRequest is the request body for PUT /api/households/:hid/rooms/:rid.
// Only name and nBins are mutable; absent fields are left unchanged.
type UpdateRoomRequest struct {
	Name  *string `json:"name,omitempty"`
	NBins *int    `json:"nBins,omitempty"`
}

// ItemLocationRequest carries a requested item location. Fields are pointers
// so that a location object missing roomId or binNumber can be rejected as
// malformed rather than silently defaulted.
type ItemLocationRequest struct {
	RoomID    *string `json:"roomId"`
	BinNumber *int    `json:"binNumber"`
}

// CreateItemRequest is the request body for POST /api/items.
type CreateItemRequest struct {
	Name      string               `json:"name"`
	Location  *ItemLocationRequest `json:"location"`
	Status    *string              `json:"status,omitempty"`
	IsPrivate *bool                `json:"isPrivate,omitempty"`
	Metadata  map[string]string    `json:"metadata,omitempty"`
}

// UpdateItemRequest is the request body for PUT /api/items/:id. Every field
// is optional; householdId and creatorUserId are deliberately absent and can
// never be patched.
type UpdateItemRequest struct {
	Name      *string              `json:"name,omitempty"`
	Location  *ItemLocationRequest `json:"location,omitempty"`
	Status    *string              `json:"status,omitempty"`
	IsPrivate *bool                `json:"isPrivate,omitempty"`
	Metadata  *map[string]string   `json:"metadata,omitempty"`
}

// HasFields reports whether the patch carries at least one recognized field.
func (r *UpdateItemRequest) HasFields() bool {
	return r.Name != nil || r.Location != nil || r.Status != nil || r.IsPrivate != nil || r.Metadata != nil
}
