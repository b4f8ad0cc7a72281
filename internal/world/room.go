package world

// RoomType classifies a room once the dungeon structure is final.
type RoomType string

const (
	// RoomStart is the entrance room the player begins in.
	RoomStart RoomType = "start"
	// RoomBoss is the room farthest from the entrance.
	RoomBoss RoomType = "boss"
	// RoomTreasure is a reward room, usually behind a single door.
	RoomTreasure RoomType = "treasure"
	// RoomConnector is a hub room with three or more doors.
	RoomConnector RoomType = "connector"
	// RoomDeadend is a room with exactly one door.
	RoomDeadend RoomType = "deadend"
	// RoomPlain is every other room.
	RoomPlain RoomType = "room"
)

// Room is an axis-aligned rectangular room. ID is the room's stable index
// into the level's room list. Dropped is set when connectivity repair gave
// up on the room and downgraded its cells to tunnel; dropped rooms keep
// their slot so ids stay stable, but no longer count as rooms.
type Room struct {
	ID      int      `json:"id"`
	X       int      `json:"x"`
	Y       int      `json:"y"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Type    RoomType `json:"type"`
	Dropped bool     `json:"dropped,omitempty"`
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// CenterPoint returns the center as a Point.
func (r Room) CenterPoint() Point {
	x, y := r.Center()
	return Point{x, y}
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Expanded returns the room grown by pad cells on every side.
func (r Room) Expanded(pad int) Room {
	return Room{
		ID:     r.ID,
		X:      r.X - pad,
		Y:      r.Y - pad,
		Width:  r.Width + 2*pad,
		Height: r.Height + 2*pad,
	}
}
