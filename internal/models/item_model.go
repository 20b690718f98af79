package models

import "time"

// Item status values.
const (
	ItemStatusStored = "STORED"
	ItemStatusOut    = "OUT"
)

// ItemLocation places an item into one bin of one room. The room must
// belong to the item's household and BinNumber must be in [1, room.NBins];
// both are checked at write time, not enforced by the store.
type ItemLocation struct {
	RoomID    string `json:"roomId" firestore:"roomId"`
	BinNumber int    `json:"binNumber" firestore:"binNumber"`
}

// Item represents a trackable physical object stored in a bin.
// HouseholdID and CreatorUserID are immutable after creation.
type Item struct {
	ID            string            `json:"id" firestore:"-"` // Document ID, auto-generated
	Name          string            `json:"name" firestore:"name"`
	Location      ItemLocation      `json:"location" firestore:"location"`
	Status        string            `json:"status" firestore:"status"` // STORED or OUT
	CreatorUserID string            `json:"creatorUserId" firestore:"creatorUserId"`
	HouseholdID   string            `json:"householdId" firestore:"householdId"`
	IsPrivate     bool              `json:"isPrivate" firestore:"isPrivate"`
	LastUpdated   time.Time         `json:"lastUpdated" firestore:"lastUpdated,serverTimestamp"`
	Metadata      map[string]string `json:"metadata,omitempty" firestore:"metadata,omitempty"`
}

// ValidItemStatus reports whether s is one of the recognized item statuses.
func ValidItemStatus(s string) bool {
	return s == ItemStatusStored || s == ItemStatusOut
}
