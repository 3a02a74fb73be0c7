// Package ledger implements the operations ledger: the entity lifecycles and
// cross-entity effects behind the hostel dashboards. Every operation either
// completes or is a silent no-op; nothing errors across this boundary.
// Callers re-read collections after mutating, there is no push mechanism.
package ledger

import (
	"go.uber.org/zap"

	"hosteltrack/backend/internal/repo"
)

// Service exposes the ledger operations over the entity repositories.
type Service struct {
	Repos *repo.Repos
	Log   *zap.Logger
}

// NewService creates the ledger service.
func NewService(r *repo.Repos, log *zap.Logger) *Service {
	return &Service{Repos: r, Log: log}
}
