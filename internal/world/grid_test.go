package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(10, 10)

	// Out-of-bounds reads as wall so neighbor scans need no bounds checks.
	assert.Equal(t, KindWall, g.KindAt(-1, 0))
	assert.Equal(t, KindWall, g.KindAt(0, -1))
	assert.Equal(t, KindWall, g.KindAt(10, 0))
	assert.Equal(t, KindWall, g.KindAt(0, 10))
	assert.False(t, g.IsWalkable(-1, -1))

	// Writes outside are dropped, not panics.
	g.SetKind(-1, -1, KindRoom)
	g.SetKind(99, 99, KindRoom)
}

func TestGridStartsAsCave(t *testing.T) {
	g := NewGrid(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, KindCave, g.KindAt(x, y))
		}
	}
}

func TestGridFeatureTags(t *testing.T) {
	g := NewGrid(10, 10)

	assert.Nil(t, g.FeaturesAt(3, 3))
	assert.False(t, g.HasFeature(3, 3, "moss"))

	g.Tag(3, 3, "moss")
	g.Tag(3, 3, "altar")
	g.Tag(3, 3, "moss") // duplicate tags collapse

	assert.True(t, g.HasFeature(3, 3, "moss"))
	assert.Equal(t, []string{"altar", "moss"}, g.FeaturesAt(3, 3))

	g.Tag(-1, -1, "moss")
	assert.Nil(t, g.FeaturesAt(-1, -1))
}

func TestGridNeighborCounts(t *testing.T) {
	g := NewGrid(10, 10)
	g.SetKind(5, 4, KindRoom)
	g.SetKind(5, 6, KindRoom)
	g.SetKind(4, 4, KindRoom)

	isRoom := func(k Kind) bool { return k == KindRoom }
	assert.Equal(t, 2, g.CountOrthogonal(5, 5, isRoom))
	assert.Equal(t, 1, g.CountDiagonal(5, 5, isRoom))
}

func TestGridChecksum(t *testing.T) {
	g1 := NewGrid(20, 20)
	g2 := NewGrid(20, 20)
	assert.Equal(t, g1.Checksum(), g2.Checksum())

	g2.SetKind(7, 7, KindRoom)
	assert.NotEqual(t, g1.Checksum(), g2.Checksum())
}

func TestKindProperties(t *testing.T) {
	walkable := []Kind{KindRoom, KindTunnel, KindDoor, KindLockedDoor, KindTeleport}
	for _, k := range walkable {
		assert.Truef(t, k.Walkable(), "%v should be walkable", k)
	}
	blocked := []Kind{KindCave, KindWall, KindSecretDoor}
	for _, k := range blocked {
		assert.Falsef(t, k.Walkable(), "%v should block", k)
	}

	seen := make(map[rune]bool)
	all := []Kind{KindCave, KindRoom, KindWall, KindTunnel, KindDoor, KindSecretDoor, KindLockedDoor, KindTeleport}
	for _, k := range all {
		r := k.Rune()
		assert.Falsef(t, seen[r], "display rune %q is reused", r)
		seen[r] = true
	}
}

func TestConfigNormalization(t *testing.T) {
	cfg := Config{
		Width:            10, // under the floor
		Height:           10,
		MinRooms:         -3,
		MaxRooms:         0,
		MinRoomSize:      1,
		MaxRoomSize:      0,
		IrregularChance:  2.5,
		LoopChance:       -1,
		DoorCarveChance:  0.5,
		SecretDoorChance: 7,
		LockedDoorChance: -0.1,
	}
	n := cfg.normalized()

	assert.Equal(t, DefaultWidth, n.Width)
	assert.Equal(t, DefaultHeight, n.Height)
	assert.GreaterOrEqual(t, n.MinRooms, 1)
	assert.GreaterOrEqual(t, n.MaxRooms, n.MinRooms)
	assert.GreaterOrEqual(t, n.MinRoomSize, 3)
	assert.GreaterOrEqual(t, n.MaxRoomSize, n.MinRoomSize)
	assert.LessOrEqual(t, n.MaxRoomSize, min(n.Width, n.Height)-6)

	assert.Equal(t, 1.0, n.IrregularChance)
	assert.Equal(t, 0.0, n.LoopChance)
	assert.Equal(t, 0.5, n.DoorCarveChance)
	assert.Equal(t, 1.0, n.SecretDoorChance)
	assert.Equal(t, 0.0, n.LockedDoorChance)
}

func TestRoomGeometry(t *testing.T) {
	room := Room{X: 5, Y: 10, Width: 6, Height: 4}

	cx, cy := room.Center()
	assert.Equal(t, 8, cx)
	assert.Equal(t, 12, cy)
	assert.Equal(t, Point{8, 12}, room.CenterPoint())

	assert.True(t, room.Contains(5, 10))
	assert.True(t, room.Contains(10, 13))
	assert.False(t, room.Contains(11, 13))
	assert.False(t, room.Contains(5, 14))

	other := Room{X: 11, Y: 10, Width: 3, Height: 3}
	assert.False(t, room.Intersects(other))
	assert.True(t, room.Expanded(1).Intersects(other))
}
