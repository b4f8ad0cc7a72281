package world

// The pruning passes are cosmetic-to-structural cleanups that run near
// the end of the pipeline. Each one loops internally until it finds
// nothing more to change, so running a pass again is always a no-op.

// pruneDoorClusters scans every 2x2 window; three or more doors in one
// window that all serve the same single room collapse to the
// lexicographically smallest position, the rest become wall.
func (g *generator) pruneDoorClusters() {
	for {
		changed := false
		for y := 0; y < g.grid.Height-1; y++ {
			for x := 0; x < g.grid.Width-1; x++ {
				if g.collapseClusterAt(x, y) {
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}

// collapseClusterAt checks the 2x2 window anchored at (x, y). Window
// positions are visited in row-major order, so the first door found is
// the lexicographically smallest and the one kept.
func (g *generator) collapseClusterAt(x, y int) bool {
	var doors []Point
	sharedRoom := -1
	uniform := true
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			px, py := x+dx, y+dy
			if g.grid.KindAt(px, py) != KindDoor {
				continue
			}
			doors = append(doors, Point{px, py})
			ids := g.adjacentRooms(px, py)
			if len(ids) != 1 {
				uniform = false
				continue
			}
			if sharedRoom < 0 {
				sharedRoom = ids[0]
			} else if sharedRoom != ids[0] {
				uniform = false
			}
		}
	}
	if len(doors) < 3 || !uniform || sharedRoom < 0 {
		return false
	}

	for _, p := range doors[1:] {
		g.grid.SetKind(p.X, p.Y, KindWall)
	}
	g.metrics.DoorClustersReduced++
	return true
}

// pruneOrphanTunnels walls off tunnel cells that are unreachable from the
// entrance and not adjacent to any room. A tunnel that is the sole exit
// of a door is spared so pruning never orphans a doorway.
func (g *generator) pruneOrphanTunnels() {
	for {
		changed := false
		reached := g.bfsReached(true)
		for y := 0; y < g.grid.Height; y++ {
			for x := 0; x < g.grid.Width; x++ {
				if g.grid.KindAt(x, y) != KindTunnel || reached[y][x] {
					continue
				}
				if g.grid.CountOrthogonal(x, y, isRoomKind) > 0 {
					continue
				}
				if g.shieldsDoor(x, y) {
					continue
				}
				g.grid.SetKind(x, y, KindWall)
				g.metrics.TunnelsPruned++
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

// pruneCornerNubs removes cosmetic one-cell tunnel stubs: no adjacent
// room, at most one walkable orthogonal neighbor, and at least one room
// diagonal. These are artifacts of corridors brushing a room's corner.
func (g *generator) pruneCornerNubs() {
	for {
		changed := false
		for y := 0; y < g.grid.Height; y++ {
			for x := 0; x < g.grid.Width; x++ {
				if g.grid.KindAt(x, y) != KindTunnel {
					continue
				}
				if g.grid.CountOrthogonal(x, y, isRoomKind) > 0 {
					continue
				}
				if g.grid.CountOrthogonal(x, y, func(k Kind) bool { return k.Walkable() }) > 1 {
					continue
				}
				if g.grid.CountDiagonal(x, y, isRoomKind) == 0 {
					continue
				}
				if g.shieldsDoor(x, y) {
					continue
				}
				g.grid.SetKind(x, y, KindWall)
				g.metrics.CornerNubsPruned++
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

// shieldsDoor reports whether the cell is the only walkable exit of an
// adjacent door; removing it would orphan that door.
func (g *generator) shieldsDoor(x, y int) bool {
	for _, d := range cardinal {
		dx, dy := x+d.X, y+d.Y
		switch g.grid.KindAt(dx, dy) {
		case KindDoor, KindLockedDoor:
			if g.grid.CountOrthogonal(dx, dy, isDoorExit) <= 1 {
				return true
			}
		}
	}
	return false
}
