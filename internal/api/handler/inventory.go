package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hosteltrack/backend/internal/models"
)

type inventoryRequest struct {
	Block string                 `json:"block"`
	Room  string                 `json:"room"`
	Items []models.InventoryItem `json:"items" binding:"required"`
}

// GetInventory returns the checklist of one room, identified by the block
// and room query parameters (falling back to the caller's profile).
func (h *Handler) GetInventory(c *gin.Context) {
	key := roomKeyFrom(c)
	inv, ok := h.Ledger.RoomInventoryFor(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no inventory recorded for room"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// SaveInventory replaces the room's item list. Damaged or missing items are
// turned into complaints by the ledger as a side effect.
func (h *Handler) SaveInventory(c *gin.Context) {
	var req inventoryRequest
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

	h.Ledger.SaveRoomInventory(models.RoomInventory{Block: req.Block, Room: req.Room, Items: req.Items})
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListInventoryIssues(c *gin.Context) {
	c.JSON(http.StatusOK, h.Ledger.InventoryIssues())
}

func roomKeyFrom(c *gin.Context) models.RoomKey {
	key := models.RoomKey{Block: c.Query("block"), Room: c.Query("room")}
	p := profileFrom(c)
	if key.Block == "" {
		key.Block = p.Block
	}
	if key.Room == "" {
		key.Room = p.Room
	}
	return key
}
