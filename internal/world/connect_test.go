package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairConnectivityBridgesIsolatedRoom(t *testing.T) {
	g := newBareGenerator(30, 30, 1)
	addTestRoom(g, 5, 5, 5, 5)
	addTestRoom(g, 20, 20, 5, 5)
	g.buildWallRings()

	// No corridors were carved, so room 1 starts unreachable.
	require.Equal(t, 1, g.unreachedRoom(g.bfsReached(false)))

	g.repairConnectivity()

	assert.Equal(t, -1, g.unreachedRoom(g.bfsReached(false)), "room 1 should be walkable from the entrance")
	assert.Greater(t, g.metrics.RepairsPerformed, 0)
}

func TestTeleportFallbackPairsIsolatedRoom(t *testing.T) {
	g := newBareGenerator(30, 30, 1)
	addTestRoom(g, 5, 5, 5, 5)
	addTestRoom(g, 20, 20, 5, 5)
	g.buildWallRings()

	g.teleportFallback()

	assert.Equal(t, 1, g.metrics.TeleportPairs)
	require.Len(t, g.teleports, 2)
	for pad, dest := range g.teleports {
		assert.Equal(t, KindTeleport, g.grid.KindAt(pad.X, pad.Y))
		back, ok := g.teleports[dest]
		require.True(t, ok, "pairing must be symmetric")
		assert.Equal(t, pad, back)
	}

	assert.Equal(t, -1, g.unreachedRoom(g.bfsReached(true)), "room 1 should be reachable through the pads")
	assert.False(t, g.rooms[1].Dropped)
}

func TestTeleportFallbackPreserveHidden(t *testing.T) {
	g := newBareGenerator(30, 30, 1)
	g.cfg.PreserveHidden = true
	addTestRoom(g, 5, 5, 5, 5)
	addTestRoom(g, 20, 20, 5, 5)
	g.buildWallRings()

	g.teleportFallback()
	g.safetySweep()

	assert.Empty(t, g.teleports, "hidden areas must not get pads")
	assert.False(t, g.rooms[1].Dropped, "hidden areas must not be downgraded")
	assert.Equal(t, 1, g.unreachedRoom(g.bfsReached(true)), "room 1 stays hidden")
}

func TestSafetySweepDowngradesUnreachableRoom(t *testing.T) {
	g := newBareGenerator(30, 30, 1)
	addTestRoom(g, 5, 5, 5, 5)
	addTestRoom(g, 20, 20, 5, 5)
	g.buildWallRings()

	g.safetySweep()

	require.Len(t, g.rooms, 2, "the id slot stays stable")
	assert.True(t, g.rooms[1].Dropped)
	assert.Equal(t, 1, g.metrics.RoomsDropped)
	for y := 20; y < 25; y++ {
		for x := 20; x < 25; x++ {
			assert.Equal(t, KindTunnel, g.grid.KindAt(x, y), "downgraded floor becomes tunnel at (%d,%d)", x, y)
		}
	}
	assert.Equal(t, -1, g.unreachedRoom(g.bfsReached(true)), "dropped rooms leave the reachability invariant")
}

func TestRoomTilePrefersCenter(t *testing.T) {
	g := newBareGenerator(30, 30, 1)
	addTestRoom(g, 5, 5, 5, 5)

	tile, ok := g.roomTile(0)
	require.True(t, ok)
	assert.Equal(t, g.rooms[0].CenterPoint(), tile)

	// A blocked center falls back to the deterministic scan.
	g.grid.SetKind(tile.X, tile.Y, KindWall)
	tile, ok = g.roomTile(0)
	require.True(t, ok)
	assert.Equal(t, Point{5, 5}, tile)
}

func TestBFSFollowsTeleportsOnlyWhenAsked(t *testing.T) {
	g := newBareGenerator(30, 30, 1)
	addTestRoom(g, 5, 5, 5, 5)
	addTestRoom(g, 20, 20, 5, 5)
	g.buildWallRings()
	g.teleportFallback()

	tile, ok := g.roomTile(1)
	require.True(t, ok)

	withPads := g.bfsReached(true)
	withoutPads := g.bfsReached(false)
	assert.True(t, withPads[tile.Y][tile.X])
	assert.False(t, withoutPads[tile.Y][tile.X])
}
