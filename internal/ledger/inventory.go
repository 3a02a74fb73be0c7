package ledger

import (
	"fmt"
	"strings"

	"hosteltrack/backend/internal/config"
	"hosteltrack/backend/internal/models"
)

// RoomInventoryFor returns the furnishing checklist of one room.
func (s *Service) RoomInventoryFor(key models.RoomKey) (models.RoomInventory, bool) {
	for _, inv := range s.Repos.Inventories() {
		if inv.Key() == key {
			return inv, true
		}
	}
	return models.RoomInventory{}, false
}

// InventoryIssues returns the inventories that have at least one Damaged or
// Missing item.
func (s *Service) InventoryIssues() []models.RoomInventory {
	var out []models.RoomInventory
	for _, inv := range s.Repos.Inventories() {
		if inv.HasIssue() {
			out = append(out, inv)
		}
	}
	return out
}

// SaveRoomInventory replaces the full item list for the room, then files a
// complaint for every Damaged or Missing item that has not been reported
// yet. Deduplication is a linear scan of complaint descriptions for the
// inventory marker plus item name within the same room; saving the same
// state twice creates no duplicates.
func (s *Service) SaveRoomInventory(inv models.RoomInventory) {
	all := s.Repos.Inventories()
	replaced := false
	for i := range all {
		if all[i].Key() == inv.Key() {
			all[i] = inv
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, inv)
	}
	s.Repos.ReplaceInventories(all)

	for _, item := range inv.Items {
		if item.Status != models.ItemDamaged && item.Status != models.ItemMissing {
			continue
		}
		marker := config.InventoryMarker + " " + item.Name
		if s.hasInventoryComplaint(inv.Room, marker) {
			continue
		}
		desc := fmt.Sprintf("%s is %s", marker, strings.ToLower(string(item.Status)))
		s.AddComplaint(inv.Block, inv.Room, "Other", desc, false)
	}
}

func (s *Service) hasInventoryComplaint(room, marker string) bool {
	for _, c := range s.Repos.Complaints() {
		if c.Room == room && strings.Contains(c.Description, marker) {
			return true
		}
	}
	return false
}
