package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignRoomTypes(t *testing.T) {
	g := newBareGenerator(40, 40, 1)
	addTestRoom(g, 3, 3, 5, 5)   // entrance
	addTestRoom(g, 30, 30, 5, 5) // farthest from the entrance
	addTestRoom(g, 3, 30, 5, 5)  // one door
	addTestRoom(g, 30, 3, 5, 5)  // three doors
	addTestRoom(g, 16, 16, 4, 4) // one door, after the treasure pick
	g.buildWallRings()

	g.grid.SetKind(5, 29, KindDoor)
	g.grid.SetKind(31, 2, KindDoor)
	g.grid.SetKind(29, 4, KindDoor)
	g.grid.SetKind(31, 8, KindDoor)
	g.grid.SetKind(15, 17, KindDoor)

	g.assignRoomTypes()

	assert.Equal(t, RoomStart, g.rooms[0].Type)
	assert.Equal(t, RoomBoss, g.rooms[1].Type)
	assert.Equal(t, RoomTreasure, g.rooms[2].Type, "the lowest-id single-door room becomes treasure")
	assert.Equal(t, RoomConnector, g.rooms[3].Type)
	assert.Equal(t, RoomDeadend, g.rooms[4].Type)

	start := g.rooms[0].CenterPoint()
	boss := g.rooms[1].CenterPoint()
	treasure := g.rooms[2].CenterPoint()
	assert.True(t, g.grid.HasFeature(start.X, start.Y, "entrance"))
	assert.True(t, g.grid.HasFeature(boss.X, boss.Y, "boss"))
	assert.True(t, g.grid.HasFeature(treasure.X, treasure.Y, "treasure"))
}

// twoRoomLayout builds two ringed rooms joined by a corridor, with a
// second doorway on room 1's top ring. connectTop additionally joins
// that doorway's tunnel back to the main corridor.
func twoRoomLayout(connectTop bool) *generator {
	g := newBareGenerator(30, 30, 1)
	addTestRoom(g, 5, 5, 5, 5)
	addTestRoom(g, 15, 5, 5, 5)
	g.buildWallRings()

	g.grid.SetKind(10, 7, KindDoor)
	g.grid.SetKind(14, 7, KindDoor)
	for x := 11; x <= 13; x++ {
		g.grid.SetKind(x, 7, KindTunnel)
	}

	g.grid.SetKind(17, 4, KindDoor)
	g.grid.SetKind(17, 3, KindTunnel)

	if connectTop {
		for x := 11; x <= 16; x++ {
			g.grid.SetKind(x, 3, KindTunnel)
		}
		for y := 4; y <= 6; y++ {
			g.grid.SetKind(11, y, KindTunnel)
		}
	}
	return g
}

func TestPlaceSecretDoorsKeepsRoomReachable(t *testing.T) {
	g := twoRoomLayout(true)
	g.cfg.SecretDoorChance = 1.0

	g.placeSecretDoors()

	// Ring scan order puts the top door first, so it is the one that
	// stays plain; the side door hides.
	assert.Equal(t, KindDoor, g.grid.KindAt(17, 4))
	assert.Equal(t, KindSecretDoor, g.grid.KindAt(14, 7))

	tile, ok := g.roomTile(1)
	require.True(t, ok)
	assert.True(t, g.bfsReached(true)[tile.Y][tile.X], "room 1 must stay reachable through the plain door")
}

func TestPlaceSecretDoorsRevertsWhenRoomWouldSeal(t *testing.T) {
	// The top doorway dead-ends, so hiding the side door would cut the
	// room off; the conversion must be rolled back.
	g := twoRoomLayout(false)
	g.cfg.SecretDoorChance = 1.0

	g.placeSecretDoors()

	assert.Equal(t, KindDoor, g.grid.KindAt(14, 7))
	assert.Equal(t, KindDoor, g.grid.KindAt(17, 4))
}

func TestPlaceSecretDoorsKeepsDownstreamRoomsReachable(t *testing.T) {
	// Three rooms in a chain. The middle room's second door guards the
	// only corridor to the last room, so hiding it would strand a room
	// the door does not even belong to.
	g := newBareGenerator(40, 30, 1)
	addTestRoom(g, 3, 5, 5, 5)
	addTestRoom(g, 13, 5, 5, 5)
	addTestRoom(g, 23, 5, 5, 5)
	g.buildWallRings()

	g.grid.SetKind(8, 7, KindDoor)
	g.grid.SetKind(12, 7, KindDoor)
	g.grid.SetKind(18, 7, KindDoor)
	g.grid.SetKind(22, 7, KindDoor)
	for x := 9; x <= 11; x++ {
		g.grid.SetKind(x, 7, KindTunnel)
	}
	for x := 19; x <= 21; x++ {
		g.grid.SetKind(x, 7, KindTunnel)
	}

	g.cfg.SecretDoorChance = 1.0
	g.placeSecretDoors()

	assert.Equal(t, KindDoor, g.grid.KindAt(18, 7), "the door guarding the chain must stay plain")

	tile, ok := g.roomTile(2)
	require.True(t, ok)
	assert.True(t, g.bfsReached(true)[tile.Y][tile.X], "the last room in the chain must stay reachable")
}

func TestPlaceSecretDoorsSkipsSingleDoorRooms(t *testing.T) {
	g := twoRoomLayout(false)
	g.cfg.SecretDoorChance = 1.0
	// Remove the top doorway; room 1 keeps a single door.
	g.grid.SetKind(17, 4, KindWall)
	g.grid.SetKind(17, 3, KindCave)

	g.placeSecretDoors()

	assert.Equal(t, KindDoor, g.grid.KindAt(14, 7), "a room's only door never hides")
}

func TestPlaceLockedDoors(t *testing.T) {
	g := twoRoomLayout(true)
	g.cfg.LockedDoorChance = 1.0
	g.rooms[1].Type = RoomBoss

	g.placeLockedDoors()

	assert.Equal(t, KindLockedDoor, g.grid.KindAt(14, 7))
	assert.Equal(t, KindLockedDoor, g.grid.KindAt(17, 4))
	assert.True(t, g.grid.IsWalkable(14, 7), "locked doors stay walkable")

	// The plain room's door is untouched.
	assert.Equal(t, KindDoor, g.grid.KindAt(10, 7))
}
