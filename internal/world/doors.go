package world

// isDoorExit reports whether a kind counts as the walkable non-room side
// of a doorway.
func isDoorExit(k Kind) bool {
	return k == KindTunnel || k == KindDoor || k == KindLockedDoor
}

func isRoomKind(k Kind) bool {
	return k == KindRoom
}

// validateDoors re-checks every door against the door invariant: exactly
// one orthogonal room neighbor and at least one walkable exit. Doors that
// cannot satisfy it are demoted rather than left invalid. The pass runs
// after every structural phase that can disturb doors.
func (g *generator) validateDoors() {
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			if g.grid.KindAt(x, y) != KindDoor {
				continue
			}
			roomN := g.grid.CountOrthogonal(x, y, isRoomKind)
			exitN := g.grid.CountOrthogonal(x, y, isDoorExit)

			switch {
			case roomN == 0:
				// No room on any side: this is just corridor.
				g.grid.SetKind(x, y, KindTunnel)
				g.metrics.DoorsDowngraded++
			case roomN >= 2:
				// A door merging two rooms is disallowed outright.
				g.grid.SetKind(x, y, KindWall)
				g.metrics.DoorsDowngraded++
			case exitN == 0:
				g.repairDoorExit(x, y, g.cfg.DoorCarveChance)
			}
		}
	}
}

// repairDoorExit tries to give a door a walkable exit by carving one cell
// outward, opposite its room side. carveChance gates the carve; a refused
// or impossible carve demotes the door to wall.
func (g *generator) repairDoorExit(x, y int, carveChance float64) {
	outX, outY, ok := g.doorOutward(x, y)
	if ok && g.grid.KindAt(outX, outY) == KindCave && g.rng.Float64() < carveChance {
		g.grid.SetKind(outX, outY, KindTunnel)
		g.metrics.RepairsPerformed++
		return
	}
	g.grid.SetKind(x, y, KindWall)
	g.metrics.DoorsDowngraded++
}

// doorOutward returns the cell opposite the door's single room neighbor.
func (g *generator) doorOutward(x, y int) (int, int, bool) {
	for _, d := range cardinal {
		if g.grid.KindAt(x+d.X, y+d.Y) == KindRoom {
			return x - d.X, y - d.Y, true
		}
	}
	return 0, 0, false
}

// roomSideOf returns which cardinal index holds the door's room neighbor,
// or -1 when there is none or more than one.
func (g *generator) roomSideOf(x, y int) int {
	side := -1
	for i, d := range cardinal {
		if g.grid.KindAt(x+d.X, y+d.Y) == KindRoom {
			if side >= 0 {
				return -1
			}
			side = i
		}
	}
	return side
}

// collapseDoorChains removes accidental multi-door runs. A run of two or
// more consecutive doors along a row or column that share the same room
// side keeps only its first door; the rest become wall. The rule is
// always-collapse: no junction pattern is exempt. A strict second sweep
// catches 2-cell pairs the directional pass missed due to ordering.
func (g *generator) collapseDoorChains() {
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; {
			x = g.collapseRunAt(x, y, true)
		}
	}
	for x := 0; x < g.grid.Width; x++ {
		for y := 0; y < g.grid.Height; {
			y = g.collapseRunAt(x, y, false)
		}
	}
	g.collapseStrict()
}

// collapseRunAt collapses the door run starting at the position along the
// given axis and returns the next scan index.
func (g *generator) collapseRunAt(x, y int, alongRow bool) int {
	pos := func(i int) (int, int) {
		if alongRow {
			return i, y
		}
		return x, i
	}
	start := x
	limit := g.grid.Width
	if !alongRow {
		start = y
		limit = g.grid.Height
	}

	cx, cy := pos(start)
	if g.grid.KindAt(cx, cy) != KindDoor {
		return start + 1
	}

	// Extend the run while the doors share one room side.
	side := g.roomSideOf(cx, cy)
	end := start + 1
	for end < limit {
		nx, ny := pos(end)
		if g.grid.KindAt(nx, ny) != KindDoor || side < 0 || g.roomSideOf(nx, ny) != side {
			break
		}
		end++
	}

	for i := start + 1; i < end; i++ {
		wx, wy := pos(i)
		g.grid.SetKind(wx, wy, KindWall)
		g.metrics.ChainsCollapsed++
	}
	return end
}

// collapseStrict walls off the second door of any remaining orthogonally
// adjacent pair, keeping the lexicographically smaller position.
func (g *generator) collapseStrict() {
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			if g.grid.KindAt(x, y) != KindDoor {
				continue
			}
			if g.grid.KindAt(x+1, y) == KindDoor {
				g.grid.SetKind(x+1, y, KindWall)
				g.metrics.ChainsCollapsed++
			}
			if g.grid.KindAt(x, y+1) == KindDoor {
				g.grid.SetKind(x, y+1, KindWall)
				g.metrics.ChainsCollapsed++
			}
		}
	}
}

// cleanupOrphanDoors makes sure every surviving door still has a walkable
// exit, carving outward once more or demoting to wall as last resort.
func (g *generator) cleanupOrphanDoors() {
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			if g.grid.KindAt(x, y) != KindDoor {
				continue
			}
			if g.grid.CountOrthogonal(x, y, isDoorExit) > 0 {
				continue
			}
			outX, outY, ok := g.doorOutward(x, y)
			if ok && g.grid.KindAt(outX, outY) == KindCave {
				g.grid.SetKind(outX, outY, KindTunnel)
				g.metrics.OrphanFixes++
				continue
			}
			g.grid.SetKind(x, y, KindWall)
			g.metrics.DoorsDowngraded++
		}
	}
}

// enforceSeparation restores the room/tunnel separation invariant: a
// tunnel orthogonally touching a room interior becomes a door when it
// borders exactly that one room and is not already next to a door,
// otherwise it is walled off.
func (g *generator) enforceSeparation() {
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			if g.grid.KindAt(x, y) != KindTunnel {
				continue
			}
			ids := g.adjacentRooms(x, y)
			if len(ids) == 0 {
				continue
			}
			hasDoorNeighbor := g.grid.CountOrthogonal(x, y, func(k Kind) bool {
				return k == KindDoor || k == KindLockedDoor
			}) > 0
			if len(ids) == 1 && !hasDoorNeighbor {
				g.grid.SetKind(x, y, KindDoor)
				g.metrics.DoorsCreated++
			} else {
				g.grid.SetKind(x, y, KindWall)
			}
		}
	}
}

// guaranteeRoomDoors punches a doorway for any room that lost every door
// to earlier repair passes. The scan aims each new door toward the
// entrance room so corridors stay roughly convergent.
func (g *generator) guaranteeRoomDoors() {
	if len(g.rooms) == 0 {
		return
	}
	toward := g.rooms[g.entrance].CenterPoint()
	for id := range g.rooms {
		if g.rooms[id].Dropped {
			continue
		}
		if g.roomDoorCount(id) > 0 {
			continue
		}
		flags := make(map[int]bool, 1)
		g.enforceEndpointDoor(id, toward, flags)
	}
}

// roomDoorCount counts doorways on the room's wall ring.
func (g *generator) roomDoorCount(id int) int {
	room := g.rooms[id]
	count := 0
	check := func(x, y int) {
		switch g.grid.KindAt(x, y) {
		case KindDoor, KindSecretDoor, KindLockedDoor:
			count++
		}
	}
	for x := room.X; x < room.X+room.Width; x++ {
		check(x, room.Y-1)
		check(x, room.Y+room.Height)
	}
	for y := room.Y; y < room.Y+room.Height; y++ {
		check(room.X-1, y)
		check(room.X+room.Width, y)
	}
	return count
}
