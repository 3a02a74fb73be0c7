package models

// RoomStatus is the occupancy state of a physical room.
type RoomStatus string

const (
	RoomAvailable RoomStatus = "Available"
	RoomOccupied  RoomStatus = "Occupied"
)

// RoomKey identifies a physical room by block and room number. It is a
// value type so composite-key equality never depends on string joining.
type RoomKey struct {
	Block string `json:"block"`
	Room  string `json:"room"`
}

// Room is one physical room of the hostel, seeded once at first run.
type Room struct {
	Block  string     `json:"block"`
	Room   string     `json:"room"`
	Floor  int        `json:"floor"`
	Status RoomStatus `json:"status"`
}

// Key returns the composite identity of the room.
func (r Room) Key() RoomKey {
	return RoomKey{Block: r.Block, Room: r.Room}
}
