package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the full ledger API on the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/session", h.CreateSession)

	r.GET("/complaints", h.ListComplaints)
	r.GET("/complaints/housekeeping", h.ListHousekeepingComplaints)
	r.POST("/complaints", h.CreateComplaint)
	r.PATCH("/complaints/:id/status", h.UpdateComplaintStatus)
	r.POST("/complaints/:id/reopen", h.ReopenComplaint)

	r.GET("/cleaning", h.ListCleaning)
	r.POST("/cleaning/:id/complete", h.CompleteCleaning)

	r.GET("/rooms", h.ListRooms)
	r.GET("/rooms/available", h.ListAvailableRooms)

	r.GET("/inventory", h.GetInventory)
	r.PUT("/inventory", h.SaveInventory)
	r.GET("/inventory/issues", h.ListInventoryIssues)

	r.GET("/room-changes", h.ListRoomChanges)
	r.POST("/room-changes", h.CreateRoomChange)
	r.PATCH("/room-changes/:id", h.DecideRoomChange)

	r.GET("/visitors", h.ListVisitors)
	r.POST("/visitors", h.CreateVisitor)
	r.PATCH("/visitors/:id", h.DecideVisitor)

	r.GET("/lostfound", h.ListLostFound)
	r.POST("/lostfound", h.CreateLostFound)
}
