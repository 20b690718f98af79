package models

// Room is a named storage area within a household, stored in the
// `rooms` subcollection of its household document.
type Room struct {
	ID    string `json:"id" firestore:"-"` // Document ID, auto-generated
	Name  string `json:"name" firestore:"name"`
	NBins int    `json:"nBins" firestore:"nBins"` // number of storage bins, >= 1
}
