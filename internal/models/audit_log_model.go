package models

import "time"

// AuditLog represents an audit trail event for mutations on shared
// resources (households, rooms, items).
type AuditLog struct {
	ID         string                 `json:"id" firestore:"-"`
	Timestamp  time.Time              `json:"timestamp" firestore:"timestamp,serverTimestamp"`
	UserID     string                 `json:"userId" firestore:"userId"` // Who performed the action
	Action     string                 `json:"action" firestore:"action"` // e.g., "HOUSEHOLD_CREATE", "ROOM_DELETE", "ITEM_BULK_IMPORT"
	TargetType string                 `json:"targetType,omitempty" firestore:"targetType,omitempty"` // e.g., "HOUSEHOLD", "ROOM", "ITEM"
	TargetID   string                 `json:"targetId,omitempty" firestore:"targetId,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty" firestore:"details,omitempty"`
}
