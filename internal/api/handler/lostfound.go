package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hosteltrack/backend/internal/models"
)

type lostFoundRequest struct {
	Type        models.LostFoundType `json:"type" binding:"required"`
	Description string               `json:"description" binding:"required"`
	Location    string               `json:"location" binding:"required"`
	Date        string               `json:"date" binding:"required"`
}

func (h *Handler) ListLostFound(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.LostFound())
}

func (h *Handler) CreateLostFound(c *gin.Context) {
	var req lostFoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created := h.Ledger.PostLostFound(req.Type, req.Description, req.Location, req.Date)
	c.JSON(http.StatusCreated, created)
}
