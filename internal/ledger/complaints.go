package ledger

import (
	"time"

	"go.uber.org/zap"

	"hosteltrack/backend/internal/config"
	"hosteltrack/backend/internal/models"
	"hosteltrack/backend/internal/repo"
)

// Complaints returns every complaint, most recent first.
func (s *Service) Complaints() []models.Complaint {
	return s.Repos.Complaints()
}

// HousekeepingComplaints returns the complaints whose category belongs to
// the fixed housekeeping set. These are visible to all roles regardless of
// block and room, to cut down duplicate reporting. Other-category complaints
// are never included.
func (s *Service) HousekeepingComplaints() []models.Complaint {
	var out []models.Complaint
	for _, c := range s.Repos.Complaints() {
		if config.IsHousekeepingCategory(c.Category) {
			out = append(out, c)
		}
	}
	return out
}

// AddComplaint files a new complaint. Callers supply only the user-entered
// fields; the ledger stamps identity, timestamp, initial status and priority.
func (s *Service) AddComplaint(block, room, category, description string, anonymous bool) models.Complaint {
	c := models.Complaint{
		ID:          repo.NewID(),
		Block:       block,
		Room:        room,
		Category:    category,
		Description: description,
		Anonymous:   anonymous,
		Status:      models.StatusSubmitted,
		Timestamp:   time.Now(),
		Priority:    config.MinPriority,
	}
	list := s.Repos.Complaints()
	s.Repos.ReplaceComplaints(append([]models.Complaint{c}, list...))
	s.Log.Info("complaint filed",
		zap.String("id", c.ID),
		zap.String("category", c.Category),
		zap.String("room", c.Room))
	return c
}

// UpdateComplaintStatus overwrites the status of the identified complaint.
// The ledger performs no legality check on the transition; which transitions
// are offered is the calling dashboard's concern. Unknown IDs are ignored.
func (s *Service) UpdateComplaintStatus(id string, status models.ComplaintStatus) {
	list := s.Repos.Complaints()
	for i := range list {
		if list[i].ID == id {
			list[i].Status = status
			s.Repos.ReplaceComplaints(list)
			return
		}
	}
}

// ReopenComplaint moves a Resolved complaint to Reopened, records the reason
// and bumps priority by one, capped at the maximum. Invoked on an unknown ID
// or a complaint that is not Resolved it changes nothing.
func (s *Service) ReopenComplaint(id, reason string) {
	list := s.Repos.Complaints()
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if list[i].Status != models.StatusResolved {
			return
		}
		list[i].Status = models.StatusReopened
		list[i].ReopenReason = reason
		if list[i].Priority < config.MaxPriority {
			list[i].Priority++
		}
		s.Repos.ReplaceComplaints(list)
		s.Log.Info("complaint reopened",
			zap.String("id", id),
			zap.Int("priority", list[i].Priority))
		return
	}
}
