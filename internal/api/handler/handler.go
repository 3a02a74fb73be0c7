// Package handler exposes the ledger operations as a JSON API for the
// dashboard views. Create endpoints take the user-entered fields only; the
// ledger stamps id, timestamp and initial status. Mutations on unknown IDs
// answer 204 like any other: the ledger treats them as silent no-ops.
package handler

import (
	"go.uber.org/zap"

	"hosteltrack/backend/internal/ledger"
	"hosteltrack/backend/internal/session"
)

// Handler holds the ledger service and the session token manager.
type Handler struct {
	Ledger   *ledger.Service
	Sessions *session.Manager
	Log      *zap.Logger
}

func NewHandler(l *ledger.Service, sessions *session.Manager, log *zap.Logger) *Handler {
	return &Handler{Ledger: l, Sessions: sessions, Log: log}
}
