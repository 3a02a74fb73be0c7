package models

import "time"

// RequestStatus is the decision state shared by room-change and visitor
// requests.
type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
)

// RoomChangeRequest is a student's application to move to another room.
// Approval flips occupancy of both rooms involved.
type RoomChangeRequest struct {
	ID             string        `json:"id"`
	StudentBlock   string        `json:"studentBlock"`
	StudentRoom    string        `json:"studentRoom"`
	RequestedBlock string        `json:"requestedBlock"`
	RequestedRoom  string        `json:"requestedRoom"`
	Reason         string        `json:"reason"`
	Status         RequestStatus `json:"status"`
	Timestamp      time.Time     `json:"timestamp"`
}

// VisitorRequest is a student's application to host a visitor for a time
// window on a given date.
type VisitorRequest struct {
	ID          string        `json:"id"`
	StudentName string        `json:"studentName"`
	Block       string        `json:"block"`
	Room        string        `json:"room"`
	VisitorName string        `json:"visitorName"`
	Date        string        `json:"date"`
	StartTime   string        `json:"startTime"`
	EndTime     string        `json:"endTime"`
	Status      RequestStatus `json:"status"`
	Timestamp   time.Time     `json:"timestamp"`
}
