package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hosteltrack/backend/internal/session"
)

type sessionRequest struct {
	Role           string `json:"role" binding:"required"`
	Block          string `json:"block"`
	Room           string `json:"room"`
	Name           string `json:"name"`
	WorkerCategory string `json:"workerCategory"`
}

// CreateSession issues a profile token for the declared role and location.
// Nothing is verified; the token only carries what the caller stated.
func (h *Handler) CreateSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := session.Profile{
		Role:           req.Role,
		Block:          req.Block,
		Room:           req.Room,
		Name:           req.Name,
		WorkerCategory: req.WorkerCategory,
	}
	token, err := h.Sessions.Issue(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "profile": p})
}
