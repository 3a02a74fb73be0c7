package models

import "time"

// CleaningEntry is one slot of the fixed weekly cleaning schedule.
// The set of entries is created once at seed time; only Completed and
// CompletedAt change afterwards.
type CleaningEntry struct {
	// ID is deterministic: "<block>F<floor>-<day>".
	ID          string     `json:"id"`
	Block       string     `json:"block"`
	Floor       int        `json:"floor"`
	Day         string     `json:"day"`
	Time        string     `json:"time"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
