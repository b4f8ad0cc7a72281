package world

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/delvegen/internal/telemetry"
)

// generator carries the mutable state of one generation call. It lives
// only for the duration of Generate; nothing in it is shared between
// calls, including the RNG.
type generator struct {
	cfg       Config
	rng       *rand.Rand
	grid      *Grid
	leaves    []*bspNode
	rooms     []Room
	roomAt    [][]int
	teleports map[Point]Point
	entrance  int
	metrics   Metrics
	tracer    trace.Tracer
}

// Generate builds a complete dungeon level from the config. It is a pure
// function of the (normalized) config: the same seed and parameters
// always reproduce the same level, so callers may cache results keyed by
// seed and size and regenerate at will.
//
// Generation never fails. Every phase degrades instead of erroring, and
// the outcome of any degradation is visible in the level's metrics.
func Generate(ctx context.Context, cfg Config) *Level {
	cfg = cfg.normalized()
	if cfg.Seed == 0 {
		// Drawn once and echoed back on the level for reproducibility.
		cfg.Seed = time.Now().UnixNano()
	}

	g := &generator{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		grid:      NewGrid(cfg.Width, cfg.Height),
		teleports: make(map[Point]Point),
		metrics:   newMetrics(),
		tracer:    telemetry.Tracer("world"),
	}
	g.roomAt = make([][]int, cfg.Height)
	for y := range g.roomAt {
		g.roomAt[y] = make([]int, cfg.Width)
		for x := range g.roomAt[y] {
			g.roomAt[y][x] = -1
		}
	}

	ctx, span := g.tracer.Start(ctx, "dungeon.generate")
	defer span.End()
	started := time.Now()

	var edges []graphEdge
	g.phase(ctx, "partition", func() {
		g.leaves = partition(g.rng, cfg.Width, cfg.Height, minLeafSize)
	})
	g.phase(ctx, "place_rooms", func() { g.placeRooms() })
	g.phase(ctx, "wall_rings", func() { g.buildWallRings() })
	g.phase(ctx, "build_graph", func() { edges = g.buildRoomGraph() })
	g.phase(ctx, "carve", func() { g.carveCorridors(edges) })
	g.phase(ctx, "doors_initial", func() {
		g.validateDoors()
		g.collapseDoorChains()
		g.cleanupOrphanDoors()
	})
	g.phase(ctx, "consolidate", func() {
		g.enforceSeparation()
		g.validateDoors()
		g.guaranteeRoomDoors()
		g.repairConnectivity()
		g.teleportFallback()
		// Residual-adjacency purge: repair carving can recreate
		// room/tunnel contact.
		g.enforceSeparation()
		g.validateDoors()
	})
	g.phase(ctx, "prune", func() {
		g.pruneDoorClusters()
		g.pruneOrphanTunnels()
		g.pruneCornerNubs()
	})
	g.phase(ctx, "safety_sweep", func() { g.safetySweep() })
	g.phase(ctx, "finalize", func() {
		g.validateDoors()
		g.collapseDoorChains()
		g.cleanupOrphanDoors()
		g.guaranteeRoomDoors()
		g.collapseStrict()
		g.cleanupOrphanDoors()
		// The sweeps above may demote a room's last door; reachability
		// gets one last net before the grid is considered final.
		g.teleportFallback()
		g.safetySweep()
		g.validateDoors()
	})
	g.phase(ctx, "features", func() { g.assignFeatures() })

	g.metrics.RuntimeMS = time.Since(started).Milliseconds()

	level := &Level{
		ID:        uuid.New(),
		Seed:      cfg.Seed,
		Grid:      g.grid,
		Rooms:     g.rooms,
		Metrics:   g.metrics,
		teleports: g.teleports,
		roomAt:    g.roomAt,
	}
	if len(g.rooms) > 0 {
		level.Entrance = g.rooms[g.entrance].CenterPoint()
	}

	span.SetAttributes(
		attribute.String("dungeon.level_id", level.ID.String()),
		attribute.Int64("dungeon.seed", level.Seed),
		attribute.Int("dungeon.width", cfg.Width),
		attribute.Int("dungeon.height", cfg.Height),
	)
	span.SetAttributes(g.metrics.spanAttributes()...)

	return level
}

// phase runs one pipeline step under its own child span and records its
// wall time in the metrics.
func (g *generator) phase(ctx context.Context, name string, fn func()) {
	_, span := g.tracer.Start(ctx, "dungeon."+name)
	defer span.End()

	phaseStart := time.Now()
	fn()
	g.metrics.PhaseMS[name] = time.Since(phaseStart).Milliseconds()
}
