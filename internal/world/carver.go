package world

import (
	"sort"
)

// carveCorridors digs a corridor for every graph edge. Each edge picks a
// style: an L-shaped pair of straight segments, or an irregular walk that
// jitters toward the target. Door bookkeeping is local to the edge's
// carve call so no edge ever punches two doors into the same room.
func (g *generator) carveCorridors(edges []graphEdge) {
	for _, e := range edges {
		g.carveEdge(e)
	}
}

func (g *generator) carveEdge(e graphEdge) {
	from := g.rooms[e.a].CenterPoint()
	to := g.rooms[e.b].CenterPoint()

	// One door per room per edge, tracked only for this carve call.
	doorFlags := make(map[int]bool, 2)

	if g.rng.Float64() < g.cfg.IrregularChance {
		g.carveIrregularWalk(from, to, e, doorFlags)
	} else if g.rng.Intn(2) == 0 {
		g.carveHorizontal(from.X, to.X, from.Y, e, doorFlags)
		g.carveVertical(from.Y, to.Y, to.X, e, doorFlags)
	} else {
		g.carveVertical(from.Y, to.Y, from.X, e, doorFlags)
		g.carveHorizontal(from.X, to.X, to.Y, e, doorFlags)
	}

	// Irregular walks can overshoot without ever touching the wall ring,
	// so both endpoint rooms get an explicit doorway guarantee.
	g.enforceEndpointDoor(e.a, to, doorFlags)
	g.enforceEndpointDoor(e.b, from, doorFlags)
}

// carveCell applies the carving rule to one cell: cave becomes tunnel,
// and a wall becomes a door when it borders exactly one room, that room
// is an endpoint of the edge, and the edge has not doored it yet. Any
// other wall stays solid; repair passes deal with blocked corridors.
func (g *generator) carveCell(x, y int, e graphEdge, doorFlags map[int]bool) {
	switch g.grid.KindAt(x, y) {
	case KindCave:
		g.grid.SetKind(x, y, KindTunnel)
	case KindWall:
		ids := g.adjacentRooms(x, y)
		if len(ids) != 1 {
			return
		}
		id := ids[0]
		if id != e.a && id != e.b {
			return
		}
		if doorFlags[id] {
			return
		}
		g.grid.SetKind(x, y, KindDoor)
		doorFlags[id] = true
		g.metrics.DoorsCreated++
	}
}

func (g *generator) carveHorizontal(x1, x2, y int, e graphEdge, doorFlags map[int]bool) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if x > 0 && x < g.grid.Width-1 && y > 0 && y < g.grid.Height-1 {
			g.carveCell(x, y, e, doorFlags)
		}
	}
}

func (g *generator) carveVertical(y1, y2, x int, e graphEdge, doorFlags map[int]bool) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if x > 0 && x < g.grid.Width-1 && y > 0 && y < g.grid.Height-1 {
			g.carveCell(x, y, e, doorFlags)
		}
	}
}

// carveIrregularWalk digs a biased random walk from one center toward the
// other, stepping along the axis with the larger remaining delta and
// occasionally jittering sideways. The step budget bounds the walk; a
// walk that runs out simply stops, and the endpoint door guarantee plus
// connectivity repair pick up the slack.
func (g *generator) carveIrregularWalk(from, to Point, e graphEdge, doorFlags map[int]bool) {
	const jitterChance = 0.2

	cur := from
	budget := 4*from.ManhattanDistance(to) + 20
	for steps := 0; steps < budget && cur != to; steps++ {
		dx := sign(to.X - cur.X)
		dy := sign(to.Y - cur.Y)

		var step Point
		switch {
		case g.rng.Float64() < jitterChance:
			step = cardinal[g.rng.Intn(len(cardinal))]
		case abs(to.X-cur.X) >= abs(to.Y-cur.Y) && dx != 0:
			step = Point{dx, 0}
		case dy != 0:
			step = Point{0, dy}
		default:
			step = Point{dx, 0}
		}

		nx := clampInt(cur.X+step.X, 1, g.grid.Width-2)
		ny := clampInt(cur.Y+step.Y, 1, g.grid.Height-2)
		if nx == cur.X && ny == cur.Y {
			continue
		}
		cur = Point{nx, ny}
		g.carveCell(cur.X, cur.Y, e, doorFlags)
	}
}

// enforceEndpointDoor guarantees the room ends this edge with a usable
// doorway. It scans the room's wall ring nearest-first toward the far
// room center and either adopts an existing door or punches a new one,
// carving one outward tunnel cell when the far side is still cave.
func (g *generator) enforceEndpointDoor(roomID int, toward Point, doorFlags map[int]bool) {
	if doorFlags[roomID] {
		return
	}
	room := g.rooms[roomID]

	type ringCell struct {
		pos     Point
		outward Point
		dist    int
	}
	var ring []ringCell
	addCell := func(x, y, ox, oy int) {
		p := Point{x, y}
		ring = append(ring, ringCell{
			pos:     p,
			outward: Point{x + ox, y + oy},
			dist:    p.ManhattanDistance(toward),
		})
	}
	for x := room.X; x < room.X+room.Width; x++ {
		addCell(x, room.Y-1, 0, -1)
		addCell(x, room.Y+room.Height, 0, 1)
	}
	for y := room.Y; y < room.Y+room.Height; y++ {
		addCell(room.X-1, y, -1, 0)
		addCell(room.X+room.Width, y, 1, 0)
	}
	sort.Slice(ring, func(i, j int) bool {
		if ring[i].dist != ring[j].dist {
			return ring[i].dist < ring[j].dist
		}
		if ring[i].pos.Y != ring[j].pos.Y {
			return ring[i].pos.Y < ring[j].pos.Y
		}
		return ring[i].pos.X < ring[j].pos.X
	})

	// An existing doorway with a walkable exit already serves the room.
	for _, c := range ring {
		kind := g.grid.KindAt(c.pos.X, c.pos.Y)
		if (kind == KindDoor || kind == KindLockedDoor) && g.grid.IsWalkable(c.outward.X, c.outward.Y) {
			doorFlags[roomID] = true
			return
		}
	}

	for _, c := range ring {
		if g.grid.KindAt(c.pos.X, c.pos.Y) != KindWall {
			continue
		}
		if ids := g.adjacentRooms(c.pos.X, c.pos.Y); len(ids) != 1 || ids[0] != roomID {
			continue
		}
		outKind := g.grid.KindAt(c.outward.X, c.outward.Y)
		if outKind != KindCave && !outKind.Walkable() {
			continue
		}
		if outKind == KindCave {
			g.grid.SetKind(c.outward.X, c.outward.Y, KindTunnel)
		}
		g.grid.SetKind(c.pos.X, c.pos.Y, KindDoor)
		doorFlags[roomID] = true
		g.metrics.DoorsCreated++
		return
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
