package models

import "time"

// Household represents a group of users sharing storage locations.
type Household struct {
	ID            string    `json:"id" firestore:"-"` // Document ID, auto-generated
	Name          string    `json:"name" firestore:"name"`
	OwnerUserID   string    `json:"ownerUserId" firestore:"ownerUserId"`
	MemberUserIDs []string  `json:"memberUserIds" firestore:"memberUserIds"` // always contains OwnerUserID
	Created       time.Time `json:"created" firestore:"created,serverTimestamp"`
}
