// Package repo provides the typed entity repositories: one getAll/replace
// pair per entity kind over the persistent store. Collection names match the
// persisted layout keys.
package repo

import (
	"go.uber.org/zap"

	"hosteltrack/backend/internal/models"
	"hosteltrack/backend/internal/store"
)

const (
	colComplaints  = "hostel_complaints"
	colCleaning    = "hostel_cleaning"
	colInventory   = "hostel_inventory"
	colRooms       = "hostel_rooms"
	colRoomChanges = "hostel_room_changes"
	colVisitors    = "hostel_visitors"
	colLostFound   = "hostel_lostfound"

	flagInitialized = "hostel_initialized"
)

// Repos bundles the per-entity accessors over one store.
type Repos struct {
	Store store.Store
	Log   *zap.Logger
}

func New(s store.Store, log *zap.Logger) *Repos {
	return &Repos{Store: s, Log: log}
}

func (r *Repos) Complaints() []models.Complaint {
	return store.Load[models.Complaint](r.Store, r.Log, colComplaints)
}

func (r *Repos) ReplaceComplaints(items []models.Complaint) {
	store.Save(r.Store, r.Log, colComplaints, items)
}

func (r *Repos) CleaningSchedule() []models.CleaningEntry {
	return store.Load[models.CleaningEntry](r.Store, r.Log, colCleaning)
}

func (r *Repos) ReplaceCleaningSchedule(items []models.CleaningEntry) {
	store.Save(r.Store, r.Log, colCleaning, items)
}

func (r *Repos) Inventories() []models.RoomInventory {
	return store.Load[models.RoomInventory](r.Store, r.Log, colInventory)
}

func (r *Repos) ReplaceInventories(items []models.RoomInventory) {
	store.Save(r.Store, r.Log, colInventory, items)
}

func (r *Repos) Rooms() []models.Room {
	return store.Load[models.Room](r.Store, r.Log, colRooms)
}

func (r *Repos) ReplaceRooms(items []models.Room) {
	store.Save(r.Store, r.Log, colRooms, items)
}

func (r *Repos) RoomChangeRequests() []models.RoomChangeRequest {
	return store.Load[models.RoomChangeRequest](r.Store, r.Log, colRoomChanges)
}

func (r *Repos) ReplaceRoomChangeRequests(items []models.RoomChangeRequest) {
	store.Save(r.Store, r.Log, colRoomChanges, items)
}

func (r *Repos) Visitors() []models.VisitorRequest {
	return store.Load[models.VisitorRequest](r.Store, r.Log, colVisitors)
}

func (r *Repos) ReplaceVisitors(items []models.VisitorRequest) {
	store.Save(r.Store, r.Log, colVisitors, items)
}

func (r *Repos) LostFound() []models.LostFoundItem {
	return store.Load[models.LostFoundItem](r.Store, r.Log, colLostFound)
}

func (r *Repos) ReplaceLostFound(items []models.LostFoundItem) {
	store.Save(r.Store, r.Log, colLostFound, items)
}

// Initialized reports whether the one-time seed has already run against
// this store. Read errors count as not initialized.
func (r *Repos) Initialized() bool {
	v, err := r.Store.GetFlag(flagInitialized)
	if err != nil {
		r.Log.Warn("initialization flag unreadable", zap.Error(err))
		return false
	}
	return v
}

// MarkInitialized persists the seed guard flag.
func (r *Repos) MarkInitialized() {
	if err := r.Store.SetFlag(flagInitialized, true); err != nil {
		r.Log.Warn("initialization flag write failed", zap.Error(err))
	}
}
