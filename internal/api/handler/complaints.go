package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hosteltrack/backend/internal/models"
)

type complaintRequest struct {
	Block       string `json:"block"`
	Room        string `json:"room"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
	Anonymous   bool   `json:"anonymous"`
}

type statusRequest struct {
	Status models.ComplaintStatus `json:"status" binding:"required"`
}

type reopenRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *Handler) ListComplaints(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.Complaints())
}

func (h *Handler) ListHousekeepingComplaints(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.HousekeepingComplaints())
}

// CreateComplaint files a complaint. Block and room default to the caller's
// profile when omitted from the body.
func (h *Handler) CreateComplaint(c *gin.Context) {
	var req complaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := profileFrom(c)
	if req.Block == "" {
		req.Block = p.Block
	}
	if req.Room == "" {
		req.Room = p.Room
	}

	created := h.Ledger.AddComplaint(req.Block, req.Room, req.Category, req.Description, req.Anonymous)
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Ledger.UpdateComplaintStatus(c.Param("id"), req.Status)
	c.Status(http.StatusNoContent)
}

func (h *Handler) ReopenComplaint(c *gin.Context) {
	var req reopenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Ledger.ReopenComplaint(c.Param("id"), req.Reason)
	c.Status(http.StatusNoContent)
}
