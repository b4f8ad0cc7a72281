package world

import (
	"github.com/google/uuid"
)

// Level is the finished product of one generation call: the grid, the
// room list and everything derived from them. Levels are immutable to
// consumers except for RevealSecretDoor; gameplay persistence stores only
// the seed, because an identical level is always regenerable from it.
type Level struct {
	// ID identifies this generated instance for diagnostics and tracing.
	ID uuid.UUID

	// Seed is the effective seed; regenerate with it for an identical level.
	Seed int64

	Grid     *Grid
	Rooms    []Room
	Entrance Point
	Metrics  Metrics

	teleports map[Point]Point
	roomAt    [][]int
}

// IsWalkable returns true if the position can be walked on. Secret doors
// are impassable until revealed.
func (l *Level) IsWalkable(x, y int) bool {
	return l.Grid.IsWalkable(x, y)
}

// KindAt returns the cell kind at the position.
func (l *Level) KindAt(x, y int) Kind {
	return l.Grid.KindAt(x, y)
}

// FeaturesAt returns the feature tags at the position, sorted.
func (l *Level) FeaturesAt(x, y int) []string {
	return l.Grid.FeaturesAt(x, y)
}

// TeleportDestination returns the paired pad for a teleport cell.
func (l *Level) TeleportDestination(x, y int) (Point, bool) {
	dest, ok := l.teleports[Point{x, y}]
	return dest, ok
}

// TeleportPairs returns the number of matched teleport pad pairs.
func (l *Level) TeleportPairs() int {
	return len(l.teleports) / 2
}

// RoomIndexAt returns the id of the room containing the position, or -1.
// Dropped rooms no longer claim their cells.
func (l *Level) RoomIndexAt(x, y int) int {
	if !l.Grid.InBounds(x, y) {
		return -1
	}
	id := l.roomAt[y][x]
	if id < 0 || l.Rooms[id].Dropped {
		return -1
	}
	return id
}

// RoomsOfType returns the live rooms with the given type.
func (l *Level) RoomsOfType(t RoomType) []Room {
	var rooms []Room
	for _, room := range l.Rooms {
		if !room.Dropped && room.Type == t {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// RevealSecretDoor flips a secret door into a plain door. It is the only
// post-generation mutation. Returns false, without touching the grid,
// for anything that is not currently a secret door; a second call on the
// same position therefore returns false.
func (l *Level) RevealSecretDoor(x, y int) bool {
	if l.Grid.KindAt(x, y) != KindSecretDoor {
		return false
	}
	l.Grid.SetKind(x, y, KindDoor)
	return true
}
