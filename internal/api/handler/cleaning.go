package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hosteltrack/backend/internal/models"
)

// ListCleaning returns the schedule, restricted to the caller's block when
// a profile with a block is presented and no explicit block query is given.
func (h *Handler) ListCleaning(c *gin.Context) {
	block := c.Query("block")
	if block == "" {
		block = profileFrom(c).Block
	}
	entries := h.Ledger.CleaningSchedule()
	if block == "" {
		c.JSON(http.StatusOK, entries)
		return
	}
	var out []models.CleaningEntry
	for _, e := range entries {
		if e.Block == block {
			out = append(out, e)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CompleteCleaning(c *gin.Context) {
	h.Ledger.MarkCleaningCompleted(c.Param("id"))
	c.Status(http.StatusNoContent)
}
