package ledger

import (
	"time"

	"go.uber.org/zap"

	"hosteltrack/backend/internal/models"
	"hosteltrack/backend/internal/repo"
)

// Rooms returns every physical room.
func (s *Service) Rooms() []models.Room {
	return s.Repos.Rooms()
}

// AvailableRooms returns the rooms currently marked Available, restricted to
// one block when block is non-empty.
func (s *Service) AvailableRooms(block string) []models.Room {
	var out []models.Room
	for _, r := range s.Repos.Rooms() {
		if r.Status != models.RoomAvailable {
			continue
		}
		if block != "" && r.Block != block {
			continue
		}
		out = append(out, r)
	}
	return out
}

// UpdateRoomStatus sets the occupancy of one room. Unknown keys are ignored.
func (s *Service) UpdateRoomStatus(key models.RoomKey, status models.RoomStatus) {
	rooms := s.Repos.Rooms()
	for i := range rooms {
		if rooms[i].Key() == key {
			rooms[i].Status = status
			s.Repos.ReplaceRooms(rooms)
			return
		}
	}
}

// RoomChangeRequests returns every room-change request, most recent first.
func (s *Service) RoomChangeRequests() []models.RoomChangeRequest {
	return s.Repos.RoomChangeRequests()
}

// RequestRoomChange files a Pending request to move rooms. Availability of
// the requested room is not re-validated here; the race between the caller's
// read and the submit is unguarded.
func (s *Service) RequestRoomChange(studentBlock, studentRoom, requestedBlock, requestedRoom, reason string) models.RoomChangeRequest {
	req := models.RoomChangeRequest{
		ID:             repo.NewID(),
		StudentBlock:   studentBlock,
		StudentRoom:    studentRoom,
		RequestedBlock: requestedBlock,
		RequestedRoom:  requestedRoom,
		Reason:         reason,
		Status:         models.RequestPending,
		Timestamp:      time.Now(),
	}
	list := s.Repos.RoomChangeRequests()
	s.Repos.ReplaceRoomChangeRequests(append([]models.RoomChangeRequest{req}, list...))
	return req
}

// DecideRoomChange records the decision on a request. Approval flips the
// student's current room to Available and the requested room to Occupied
// before returning, so no caller observes a half-applied move. Rejection
// touches no rooms. Re-deciding an already decided request is not prevented.
func (s *Service) DecideRoomChange(id string, status models.RequestStatus) {
	list := s.Repos.RoomChangeRequests()
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Status = status
		s.Repos.ReplaceRoomChangeRequests(list)
		if status == models.RequestApproved {
			s.UpdateRoomStatus(models.RoomKey{Block: list[i].StudentBlock, Room: list[i].StudentRoom}, models.RoomAvailable)
			s.UpdateRoomStatus(models.RoomKey{Block: list[i].RequestedBlock, Room: list[i].RequestedRoom}, models.RoomOccupied)
			s.Log.Info("room change approved",
				zap.String("id", id),
				zap.String("from", list[i].StudentRoom),
				zap.String("to", list[i].RequestedRoom))
		}
		return
	}
}
