package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type visitorRequest struct {
	StudentName string `json:"studentName"`
	Block       string `json:"block"`
	Room        string `json:"room"`
	VisitorName string `json:"visitorName" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
}

func (h *Handler) ListVisitors(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.Visitors())
}

// CreateVisitor files a visitor request. The time window is not validated;
// the dashboards are expected not to submit nonsense.
func (h *Handler) CreateVisitor(c *gin.Context) {
	var req visitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := profileFrom(c)
	if req.StudentName == "" {
		req.StudentName = p.Name
	}
	if req.Block == "" {
		req.Block = p.Block
	}
	if req.Room == "" {
		req.Room = p.Room
	}

	created := h.Ledger.RequestVisitor(req.StudentName, req.Block, req.Room, req.VisitorName, req.Date, req.StartTime, req.EndTime)
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) DecideVisitor(c *gin.Context) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Ledger.DecideVisitor(c.Param("id"), req.Status)
	c.Status(http.StatusNoContent)
}
