package ledger

import (
	"time"

	"hosteltrack/backend/internal/models"
)

// CleaningSchedule returns the fixed weekly schedule seeded at first run.
func (s *Service) CleaningSchedule() []models.CleaningEntry {
	return s.Repos.CleaningSchedule()
}

// MarkCleaningCompleted marks one schedule slot done and stamps the
// completion time. Unknown IDs are ignored.
func (s *Service) MarkCleaningCompleted(id string) {
	list := s.Repos.CleaningSchedule()
	for i := range list {
		if list[i].ID == id {
			now := time.Now()
			list[i].Completed = true
			list[i].CompletedAt = &now
			s.Repos.ReplaceCleaningSchedule(list)
			return
		}
	}
}
