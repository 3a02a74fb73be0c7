package models

// ItemStatus is the checked condition of a single inventory item.
type ItemStatus string

const (
	ItemWorking    ItemStatus = "Working"
	ItemDamaged    ItemStatus = "Damaged"
	ItemMissing    ItemStatus = "Missing"
	ItemNotChecked ItemStatus = "Not Checked"
)

// InventoryItem is one furnishing of a room and its last reported condition.
type InventoryItem struct {
	Name   string     `json:"name"`
	Status ItemStatus `json:"status"`
}

// RoomInventory is the full furnishing checklist of one room. At most one
// record exists per (block, room); saving replaces the whole item list.
type RoomInventory struct {
	Block string          `json:"block"`
	Room  string          `json:"room"`
	Items []InventoryItem `json:"items"`
}

// Key returns the composite identity of the inventory record.
func (i RoomInventory) Key() RoomKey {
	return RoomKey{Block: i.Block, Room: i.Room}
}

// HasIssue reports whether any item is Damaged or Missing.
func (i RoomInventory) HasIssue() bool {
	for _, item := range i.Items {
		if item.Status == ItemDamaged || item.Status == ItemMissing {
			return true
		}
	}
	return false
}
