package ledger

import (
	"time"

	"hosteltrack/backend/internal/models"
	"hosteltrack/backend/internal/repo"
)

// LostFound returns every lost-and-found posting, most recent first.
func (s *Service) LostFound() []models.LostFoundItem {
	return s.Repos.LostFound()
}

// PostLostFound appends a posting. The type is caller-supplied; there is no
// moderation and no matching between Lost and Found entries.
func (s *Service) PostLostFound(kind models.LostFoundType, description, location, date string) models.LostFoundItem {
	item := models.LostFoundItem{
		ID:          repo.NewID(),
		Type:        kind,
		Description: description,
		Location:    location,
		Date:        date,
		Timestamp:   time.Now(),
	}
	list := s.Repos.LostFound()
	s.Repos.ReplaceLostFound(append([]models.LostFoundItem{item}, list...))
	return item
}
