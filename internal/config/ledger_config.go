package config

// Fixed domain constants of the operations ledger. These mirror the seeded
// data set and are not configurable at runtime.

const (
	// Priority bounds for complaints.
	MinPriority = 1
	MaxPriority = 5

	// InventoryMarker prefixes descriptions of complaints that were derived
	// from a damaged or missing inventory item. Deduplication of derived
	// complaints matches on this marker plus the item name.
	InventoryMarker = "[Inventory]"

	// Seed dimensions.
	FloorsPerBlock = 4
	RoomsPerFloor  = 10

	// OccupiedProbability is the chance a seeded room starts out Occupied.
	OccupiedProbability = 0.8
)

// Blocks are the hostel blocks known to the seeded data set.
var Blocks = []string{"B", "C"}

// CleaningDays are the scheduled cleaning days, Monday through Saturday.
var CleaningDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// HousekeepingCategories is the fixed set of complaint categories visible to
// all roles. Complaints in any of these categories cross-cut block and room.
var HousekeepingCategories = []string{"Housekeeping", "AC", "Plumbing", "Electrical", "Carpenter", "Water Cooler"}

// AllCategories is HousekeepingCategories plus the catch-all Other.
var AllCategories = append(append([]string{}, HousekeepingCategories...), "Other")

// InventoryItems is the fixed furnishing checklist of every room.
var InventoryItems = []string{"Bed", "Table", "Fan", "Light", "Cupboard", "Shoe Rack", "Chair"}

// IsHousekeepingCategory reports whether category belongs to the fixed
// housekeeping set. The Other category is never housekeeping.
func IsHousekeepingCategory(category string) bool {
	for _, c := range HousekeepingCategories {
		if c == category {
			return true
		}
	}
	return false
}
