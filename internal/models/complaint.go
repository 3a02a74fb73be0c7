package models

import "time"

// ComplaintStatus is the lifecycle state of a complaint.
type ComplaintStatus string

const (
	StatusSubmitted  ComplaintStatus = "Submitted"
	StatusSeen       ComplaintStatus = "Seen"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"
	StatusReopened   ComplaintStatus = "Reopened"
	StatusClosed     ComplaintStatus = "Closed"
)

// Complaint is a maintenance or housekeeping report filed against a room.
// Priority starts at 1 and only grows (capped at 5) through reopens.
type Complaint struct {
	ID           string          `json:"id"`
	Block        string          `json:"block"`
	Room         string          `json:"room"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Anonymous    bool            `json:"anonymous"`
	Status       ComplaintStatus `json:"status"`
	Timestamp    time.Time       `json:"timestamp"`
	Priority     int             `json:"priority"`
	ReopenReason string          `json:"reopenReason,omitempty"`
}
