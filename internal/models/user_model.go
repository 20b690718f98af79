package models

import "time"

// User represents a user profile document in the `users` collection.
// The Firebase Auth UID is the Firestore document ID.
type User struct {
	ID          string `json:"uid" firestore:"-"`
	Email       string `json:"email" firestore:"email"`
	DisplayName string `json:"displayName" firestore:"displayName"`
	// HouseholdID is nil until the user creates or joins a household.
	// It transitions from nil to a household ID exactly once; only
	// HouseholdService writes it.
	HouseholdID *string   `json:"householdId" firestore:"householdId"`
	Created     time.Time `json:"created" firestore:"created,serverTimestamp"`
	LastLogin   time.Time `json:"lastLogin" firestore:"lastLogin,serverTimestamp"`
}
