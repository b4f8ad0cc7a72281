// Package world provides deterministic dungeon generation and map queries.
package world

// Kind identifies what a single grid cell is.
type Kind uint8

const (
	// KindCave is unexcavated rock; the whole grid starts as cave.
	KindCave Kind = iota
	// KindRoom is a walkable room interior cell.
	KindRoom
	// KindWall is solid wall, including the ring around every room.
	KindWall
	// KindTunnel is a walkable corridor cell.
	KindTunnel
	// KindDoor is a doorway between a room and a corridor.
	KindDoor
	// KindSecretDoor is a hidden doorway; impassable until revealed.
	KindSecretDoor
	// KindLockedDoor is a locked but walkable doorway.
	KindLockedDoor
	// KindTeleport is a teleport pad paired with another pad.
	KindTeleport
)

// Walkable returns true if the kind can be walked on.
// Secret doors are impassable until revealed.
func (k Kind) Walkable() bool {
	switch k {
	case KindRoom, KindTunnel, KindDoor, KindLockedDoor, KindTeleport:
		return true
	default:
		return false
	}
}

// Rune returns the kind's display character.
func (k Kind) Rune() rune {
	switch k {
	case KindCave:
		return ' '
	case KindRoom:
		return '.'
	case KindWall:
		return '#'
	case KindTunnel:
		return ','
	case KindDoor:
		return '+'
	case KindSecretDoor:
		return '*'
	case KindLockedDoor:
		return 'x'
	case KindTeleport:
		return '^'
	default:
		return '?'
	}
}

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindCave:
		return "cave"
	case KindRoom:
		return "room"
	case KindWall:
		return "wall"
	case KindTunnel:
		return "tunnel"
	case KindDoor:
		return "door"
	case KindSecretDoor:
		return "secret_door"
	case KindLockedDoor:
		return "locked_door"
	case KindTeleport:
		return "teleport"
	default:
		return "unknown"
	}
}

// Point is a grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ManhattanDistance returns the orthogonal step distance to another point.
func (p Point) ManhattanDistance(other Point) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// cardinal lists the four orthogonal neighbor offsets in N, E, S, W order.
// All adjacency logic iterates this table so the traversal order is fixed.
var cardinal = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// diagonal lists the four diagonal neighbor offsets.
var diagonal = [4]Point{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
