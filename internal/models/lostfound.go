package models

import "time"

// LostFoundType marks a posting as a lost report or a found report.
type LostFoundType string

const (
	TypeLost  LostFoundType = "Lost"
	TypeFound LostFoundType = "Found"
)

// LostFoundItem is an append-only lost-and-found posting. There is no
// status, moderation or matching between Lost and Found entries.
type LostFoundItem struct {
	ID          string        `json:"id"`
	Type        LostFoundType `json:"type"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Date        string        `json:"date"`
	Timestamp   time.Time     `json:"timestamp"`
}
