package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hosteltrack/backend/internal/models"
)

type roomChangeRequest struct {
	StudentBlock   string `json:"studentBlock"`
	StudentRoom    string `json:"studentRoom"`
	RequestedBlock string `json:"requestedBlock" binding:"required"`
	RequestedRoom  string `json:"requestedRoom" binding:"required"`
	Reason         string `json:"reason" binding:"required"`
}

type decisionRequest struct {
	Status models.RequestStatus `json:"status" binding:"required"`
}

func (h *Handler) ListRooms(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.Rooms())
}

// ListAvailableRooms returns Available rooms, optionally filtered by the
// block query parameter.
func (h *Handler) ListAvailableRooms(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.AvailableRooms(c.Query("block")))
}

func (h *Handler) ListRoomChanges(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.RoomChangeRequests())
}

// CreateRoomChange files a move request. The student's current block and
// room default to the caller's profile when omitted.
func (h *Handler) CreateRoomChange(c *gin.Context) {
	var req roomChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := profileFrom(c)
	if req.StudentBlock == "" {
		req.StudentBlock = p.Block
	}
	if req.StudentRoom == "" {
		req.StudentRoom = p.Room
	}

	created := h.Ledger.RequestRoomChange(req.StudentBlock, req.StudentRoom, req.RequestedBlock, req.RequestedRoom, req.Reason)
	c.JSON(http.StatusCreated, created)
}

// DecideRoomChange records the warden's decision. Approval flips both rooms'
// occupancy inside the ledger before this returns.
func (h *Handler) DecideRoomChange(c *gin.Context) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Ledger.DecideRoomChange(c.Param("id"), req.Status)
	c.Status(http.StatusNoContent)
}
