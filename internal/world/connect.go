package world

// entranceTile returns the BFS origin: a walkable cell of the entrance
// room, preferring its center.
func (g *generator) entranceTile() (Point, bool) {
	if len(g.rooms) == 0 {
		return Point{}, false
	}
	return g.roomTile(g.entrance)
}

// roomTile returns a representative in-room floor cell, preferring the
// center and falling back to a deterministic scan.
func (g *generator) roomTile(id int) (Point, bool) {
	room := g.rooms[id]
	center := room.CenterPoint()
	if k := g.grid.KindAt(center.X, center.Y); k == KindRoom || k == KindTeleport {
		return center, true
	}
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if k := g.grid.KindAt(x, y); k == KindRoom || k == KindTeleport {
				return Point{x, y}, true
			}
		}
	}
	return Point{}, false
}

// bfsReached floods from the entrance over walkable cells and returns the
// reached mask. followTeleports additionally jumps across paired pads.
func (g *generator) bfsReached(followTeleports bool) [][]bool {
	reached := make([][]bool, g.grid.Height)
	for y := range reached {
		reached[y] = make([]bool, g.grid.Width)
	}

	start, ok := g.entranceTile()
	if !ok {
		return reached
	}

	queue := []Point{start}
	reached[start.Y][start.X] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if followTeleports && g.grid.KindAt(cur.X, cur.Y) == KindTeleport {
			if dest, ok := g.teleports[cur]; ok && !reached[dest.Y][dest.X] {
				reached[dest.Y][dest.X] = true
				queue = append(queue, dest)
			}
		}

		for _, d := range cardinal {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if !g.grid.InBounds(nx, ny) || reached[ny][nx] {
				continue
			}
			if !g.grid.IsWalkable(nx, ny) {
				continue
			}
			reached[ny][nx] = true
			queue = append(queue, Point{nx, ny})
		}
	}
	return reached
}

// reachedRooms reduces a flood mask to per-room reachability, indexed by
// room id. Dropped rooms read as unreached.
func (g *generator) reachedRooms(reached [][]bool) []bool {
	rooms := make([]bool, len(g.rooms))
	for id := range g.rooms {
		if g.rooms[id].Dropped {
			continue
		}
		tile, ok := g.roomTile(id)
		if ok && reached[tile.Y][tile.X] {
			rooms[id] = true
		}
	}
	return rooms
}

// unreachedRoom returns the lowest-id live room whose representative tile
// the flood did not reach, or -1.
func (g *generator) unreachedRoom(reached [][]bool) int {
	for id := range g.rooms {
		if g.rooms[id].Dropped || id == g.entrance {
			continue
		}
		tile, ok := g.roomTile(id)
		if !ok {
			continue
		}
		if !reached[tile.Y][tile.X] {
			return id
		}
	}
	return -1
}

// repairConnectivity carves minimal paths from unreachable rooms to the
// nearest already-reached tile, re-flooding after each carve. The repair
// budget is max(15, 2 x room count); rooms that survive it move on to the
// teleport fallback instead of looping forever.
func (g *generator) repairConnectivity() {
	budget := max(15, 2*len(g.rooms))
	for attempt := 0; attempt < budget; attempt++ {
		reached := g.bfsReached(false)
		id := g.unreachedRoom(reached)
		if id < 0 {
			return
		}

		tile, ok := g.roomTile(id)
		if !ok {
			continue
		}
		target, found := g.nearestReached(reached, tile)
		if !found {
			return
		}
		g.carveRepairPath(tile, target)
		g.metrics.RepairsPerformed++
	}
}

// nearestReached finds the reached tile with the smallest Manhattan
// distance to the origin. Distance is measured over the reached set, and
// ties break on scan order so repair is deterministic.
func (g *generator) nearestReached(reached [][]bool, from Point) (Point, bool) {
	best := Point{}
	bestDist := -1
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			if !reached[y][x] {
				continue
			}
			dist := from.ManhattanDistance(Point{x, y})
			if bestDist < 0 || dist < bestDist {
				best = Point{x, y}
				bestDist = dist
			}
		}
	}
	return best, bestDist >= 0
}

// carveRepairPath digs a minimal orthogonal L path, promoting walls to
// doors when they border exactly one room and to tunnel otherwise.
func (g *generator) carveRepairPath(from, to Point) {
	cur := from
	step := func(dx, dy int) {
		cur = Point{cur.X + dx, cur.Y + dy}
		g.carveRepairCell(cur.X, cur.Y)
	}
	for cur.X != to.X {
		step(sign(to.X-cur.X), 0)
	}
	for cur.Y != to.Y {
		step(0, sign(to.Y-cur.Y))
	}
}

func (g *generator) carveRepairCell(x, y int) {
	switch g.grid.KindAt(x, y) {
	case KindCave:
		g.grid.SetKind(x, y, KindTunnel)
	case KindWall:
		if len(g.adjacentRooms(x, y)) == 1 {
			g.grid.SetKind(x, y, KindDoor)
			g.metrics.DoorsCreated++
		} else {
			g.grid.SetKind(x, y, KindTunnel)
		}
	}
}

// teleportFallback guarantees logical reachability for rooms that carving
// could not connect: a teleport pad inside the unreachable room is paired
// with a pad in the entrance room. Rooms that cannot even host a pad are
// downgraded instead. This is the designed escape hatch, never an error.
// With PreserveHidden set, unreachable rooms are left alone entirely so
// intentionally hidden areas survive.
func (g *generator) teleportFallback() {
	if g.cfg.PreserveHidden {
		return
	}
	for {
		reached := g.bfsReached(true)
		id := g.unreachedRoom(reached)
		if id < 0 {
			return
		}

		padIn, okIn := g.freeRoomCell(id)
		padOut, okOut := g.freeRoomCell(g.entrance)
		if !okIn || !okOut {
			g.downgradeRoom(id)
			continue
		}

		g.grid.SetKind(padIn.X, padIn.Y, KindTeleport)
		g.grid.SetKind(padOut.X, padOut.Y, KindTeleport)
		g.teleports[padIn] = padOut
		g.teleports[padOut] = padIn
		g.metrics.TeleportPairs++
	}
}

// freeRoomCell returns a plain room-interior cell suitable for a teleport
// pad, scanning deterministically from the room's top-left.
func (g *generator) freeRoomCell(id int) (Point, bool) {
	room := g.rooms[id]
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if g.grid.KindAt(x, y) == KindRoom {
				return Point{x, y}, true
			}
		}
	}
	return Point{}, false
}

// downgradeRoom converts the room's remaining floor to tunnel and drops
// it from the room-reachability invariant. Its id slot stays stable.
func (g *generator) downgradeRoom(id int) {
	room := g.rooms[id]
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if g.grid.KindAt(x, y) == KindRoom {
				g.grid.SetKind(x, y, KindTunnel)
			}
		}
	}
	g.rooms[id].Dropped = true
	g.metrics.RoomsDropped++
}

// safetySweep is the post-generation net: any room still unreachable even
// through teleports is downgraded, unless hidden areas are preserved.
func (g *generator) safetySweep() {
	if g.cfg.PreserveHidden {
		return
	}
	for {
		reached := g.bfsReached(true)
		id := g.unreachedRoom(reached)
		if id < 0 {
			return
		}
		g.downgradeRoom(id)
	}
}
