package world

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBareGenerator builds a generator around an empty grid for tests
// that drive individual phases by hand.
func newBareGenerator(width, height int, seed int64) *generator {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = seed
	cfg = cfg.normalized()

	g := &generator{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		grid:      NewGrid(cfg.Width, cfg.Height),
		teleports: make(map[Point]Point),
		metrics:   newMetrics(),
	}
	g.roomAt = make([][]int, cfg.Height)
	for y := range g.roomAt {
		g.roomAt[y] = make([]int, cfg.Width)
		for x := range g.roomAt[y] {
			g.roomAt[y][x] = -1
		}
	}
	return g
}

// floodWalkable runs the reachability flood a consumer would: BFS from
// the entrance over walkable cells, following teleport pairings.
func floodWalkable(level *Level) map[Point]bool {
	reached := make(map[Point]bool)
	start := level.Entrance
	if !level.IsWalkable(start.X, start.Y) {
		return reached
	}
	queue := []Point{start}
	reached[start] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if dest, ok := level.TeleportDestination(cur.X, cur.Y); ok && !reached[dest] {
			reached[dest] = true
			queue = append(queue, dest)
		}
		for _, d := range cardinal {
			next := Point{cur.X + d.X, cur.Y + d.Y}
			if reached[next] || !level.IsWalkable(next.X, next.Y) {
				continue
			}
			reached[next] = true
			queue = append(queue, next)
		}
	}
	return reached
}

func assertDoorInvariant(t *testing.T, level *Level) {
	t.Helper()
	for y := 0; y < level.Grid.Height; y++ {
		for x := 0; x < level.Grid.Width; x++ {
			if level.KindAt(x, y) != KindDoor {
				continue
			}
			rooms := level.Grid.CountOrthogonal(x, y, func(k Kind) bool { return k == KindRoom })
			exits := level.Grid.CountOrthogonal(x, y, isDoorExit)
			doors := level.Grid.CountOrthogonal(x, y, func(k Kind) bool { return k == KindDoor })
			assert.Equalf(t, 1, rooms, "door at (%d,%d) must border exactly one room", x, y)
			assert.GreaterOrEqualf(t, exits, 1, "door at (%d,%d) must have a walkable exit", x, y)
			assert.Zerof(t, doors, "door at (%d,%d) must not touch another door", x, y)
		}
	}
}

func assertSeparation(t *testing.T, level *Level) {
	t.Helper()
	for y := 0; y < level.Grid.Height; y++ {
		for x := 0; x < level.Grid.Width; x++ {
			if level.KindAt(x, y) != KindRoom {
				continue
			}
			tunnels := level.Grid.CountOrthogonal(x, y, func(k Kind) bool { return k == KindTunnel })
			assert.Zerof(t, tunnels, "room cell at (%d,%d) touches a tunnel", x, y)
		}
	}
}

func assertFullReachability(t *testing.T, level *Level) {
	t.Helper()
	reached := floodWalkable(level)
	for y := 0; y < level.Grid.Height; y++ {
		for x := 0; x < level.Grid.Width; x++ {
			if level.KindAt(x, y) != KindRoom {
				continue
			}
			assert.Truef(t, reached[Point{x, y}], "room cell at (%d,%d) unreachable from entrance", x, y)
		}
	}
}

func TestGenerateReproducibility(t *testing.T) {
	// Generate two levels with the same seed and config.
	cfg := DefaultConfig()
	cfg.Seed = 12345

	ctx := context.Background()
	l1 := Generate(ctx, cfg)
	l2 := Generate(ctx, cfg)

	// Verify same number of rooms
	if len(l1.Rooms) != len(l2.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(l1.Rooms), len(l2.Rooms))
	}

	// Verify rooms are in same positions with same types
	for i := range l1.Rooms {
		r1, r2 := l1.Rooms[i], l2.Rooms[i]
		if r1 != r2 {
			t.Errorf("Room %d mismatch: %+v != %+v", i, r1, r2)
		}
	}

	// Verify tiles are identical
	for y := 0; y < l1.Grid.Height; y++ {
		for x := 0; x < l1.Grid.Width; x++ {
			if l1.KindAt(x, y) != l2.KindAt(x, y) {
				t.Errorf("Tile mismatch at (%d,%d): %v != %v", x, y, l1.KindAt(x, y), l2.KindAt(x, y))
			}
		}
	}

	if l1.Grid.Checksum() != l2.Grid.Checksum() {
		t.Errorf("Checksum mismatch: %016x != %016x", l1.Grid.Checksum(), l2.Grid.Checksum())
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	cfg1 := DefaultConfig()
	cfg1.Seed = 12345
	cfg2 := DefaultConfig()
	cfg2.Seed = 54321

	ctx := context.Background()
	l1 := Generate(ctx, cfg1)
	l2 := Generate(ctx, cfg2)

	if l1.Grid.Checksum() == l2.Grid.Checksum() {
		t.Error("Levels with different seeds should not be identical")
	}
}

func TestGenerateSeedEcho(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 0

	ctx := context.Background()
	l1 := Generate(ctx, cfg)
	require.NotZero(t, l1.Seed, "absent seed must be drawn and echoed back")

	// Regenerating with the echoed seed reproduces the level.
	cfg.Seed = l1.Seed
	l2 := Generate(ctx, cfg)
	assert.Equal(t, l1.Grid.Checksum(), l2.Grid.Checksum())
	assert.Equal(t, l1.Rooms, l2.Rooms)
}

func TestGenerateScenarioSeed1234(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 75
	cfg.Height = 75
	cfg.Seed = 1234

	level := Generate(context.Background(), cfg)

	starts := level.RoomsOfType(RoomStart)
	require.Len(t, starts, 1, "exactly one start room expected")
	cx, cy := starts[0].Center()
	assert.True(t, level.IsWalkable(cx, cy), "start room center must be walkable")
	assert.Contains(t, level.FeaturesAt(cx, cy), "entrance")

	require.NotEmpty(t, level.RoomsOfType(RoomBoss), "a boss room must be tagged")

	// Regression baseline for this seed.
	assert.Zero(t, level.Metrics.RoomsDropped, "no rooms should be dropped for seed 1234")

	assertDoorInvariant(t, level)
	assertSeparation(t, level)
	assertFullReachability(t, level)
}

func TestGenerateInvariantsAcrossSeeds(t *testing.T) {
	seeds := []int64{1, 7, 42, 99, 1234, 987654321}
	for _, seed := range seeds {
		cfg := DefaultConfig()
		cfg.Seed = seed

		level := Generate(context.Background(), cfg)

		require.NotEmpty(t, level.Rooms, "seed %d produced no rooms", seed)
		assertDoorInvariant(t, level)
		assertSeparation(t, level)
		assertFullReachability(t, level)
	}
}

func TestGenerateMetrics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42

	level := Generate(context.Background(), cfg)
	m := level.Metrics

	assert.Equal(t, len(level.Rooms), m.RoomsPlaced)
	assert.GreaterOrEqual(t, m.RoomsRequested, m.RoomsPlaced)
	assert.Greater(t, m.DoorsCreated, 0)

	for _, phase := range []string{
		"partition", "place_rooms", "wall_rings", "build_graph", "carve",
		"doors_initial", "consolidate", "prune", "safety_sweep", "finalize", "features",
	} {
		_, ok := m.PhaseMS[phase]
		assert.Truef(t, ok, "phase %q was not timed", phase)
	}
}

func TestGenerateSmallGridDegradesGracefully(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 24
	cfg.MinRooms = 10
	cfg.MaxRooms = 20
	cfg.Seed = 7

	// The grid cannot hold 10 padded rooms; generation must still finish
	// with whatever fits.
	level := Generate(context.Background(), cfg)
	assert.LessOrEqual(t, level.Metrics.RoomsPlaced, level.Metrics.RoomsRequested)
	assertDoorInvariant(t, level)
	assertSeparation(t, level)
	assertFullReachability(t, level)
}

func TestSnapshot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 4242

	level := Generate(context.Background(), cfg)

	ascii := level.RenderASCII()
	lines := 0
	for _, ch := range ascii {
		if ch == '\n' {
			lines++
		}
	}
	assert.Equal(t, level.Grid.Height, lines)

	snap := level.Snapshot()
	assert.Equal(t, level.ID.String(), snap.ID)
	assert.Equal(t, level.Seed, snap.Seed)
	assert.Equal(t, cfg.Width, snap.Width)
	assert.Equal(t, cfg.Height, snap.Height)
	assert.Len(t, snap.Rooms, len(level.Rooms))

	data, err := level.MarshalSnapshot()
	require.NoError(t, err)
	assert.Contains(t, string(data), snap.Checksum)
}
