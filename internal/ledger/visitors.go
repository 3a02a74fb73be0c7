package ledger

import (
	"time"

	"hosteltrack/backend/internal/models"
	"hosteltrack/backend/internal/repo"
)

// Visitors returns every visitor request, most recent first.
func (s *Service) Visitors() []models.VisitorRequest {
	return s.Repos.Visitors()
}

// RequestVisitor files a Pending visitor request. The time window is taken
// as given; start before end is not checked.
func (s *Service) RequestVisitor(studentName, block, room, visitorName, date, startTime, endTime string) models.VisitorRequest {
	req := models.VisitorRequest{
		ID:          repo.NewID(),
		StudentName: studentName,
		Block:       block,
		Room:        room,
		VisitorName: visitorName,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		Status:      models.RequestPending,
		Timestamp:   time.Now(),
	}
	list := s.Repos.Visitors()
	s.Repos.ReplaceVisitors(append([]models.VisitorRequest{req}, list...))
	return req
}

// DecideVisitor records the decision on a visitor request. No other entity
// is touched. Unknown IDs are ignored.
func (s *Service) DecideVisitor(id string, status models.RequestStatus) {
	list := s.Repos.Visitors()
	for i := range list {
		if list[i].ID == id {
			list[i].Status = status
			s.Repos.ReplaceVisitors(list)
			return
		}
	}
}
