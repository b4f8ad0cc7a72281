package world

// placeRooms fills BSP leaves with non-overlapping rooms. The attempt
// budget is target x placementAttemptsPerRoom; exhausting it leaves us
// with fewer rooms than requested, which is recorded in metrics and is
// never an error.
func (g *generator) placeRooms() {
	target := g.cfg.MinRooms
	if spread := g.cfg.MaxRooms - g.cfg.MinRooms; spread > 0 {
		target += g.rng.Intn(spread + 1)
	}
	g.metrics.RoomsRequested = target
	if len(g.leaves) == 0 {
		return
	}

	attempts := target * placementAttemptsPerRoom
	for try := 0; try < attempts && len(g.rooms) < target; try++ {
		leaf := g.leaves[g.rng.Intn(len(g.leaves))]
		room, ok := g.roomInLeaf(leaf)
		if !ok {
			continue
		}
		if g.overlapsExisting(room) {
			continue
		}
		g.acceptRoom(room)
	}
	g.metrics.RoomsPlaced = len(g.rooms)
}

// roomInLeaf picks a room size and position inside the leaf, keeping a
// one-cell margin so the wall ring fits inside the leaf.
func (g *generator) roomInLeaf(leaf *bspNode) (Room, bool) {
	maxW := min(g.cfg.MaxRoomSize, leaf.width-2)
	maxH := min(g.cfg.MaxRoomSize, leaf.height-2)
	if maxW < g.cfg.MinRoomSize || maxH < g.cfg.MinRoomSize {
		return Room{}, false
	}

	w := g.cfg.MinRoomSize + g.rng.Intn(maxW-g.cfg.MinRoomSize+1)
	h := g.cfg.MinRoomSize + g.rng.Intn(maxH-g.cfg.MinRoomSize+1)
	x := leaf.x + 1 + g.rng.Intn(leaf.width-w-1)
	y := leaf.y + 1 + g.rng.Intn(leaf.height-h-1)

	return Room{X: x, Y: y, Width: w, Height: h, Type: RoomPlain}, true
}

// overlapsExisting rejects placements whose padded footprint touches an
// already placed room, guaranteeing every ring has clearance.
func (g *generator) overlapsExisting(room Room) bool {
	padded := room.Expanded(roomPadding)
	for _, other := range g.rooms {
		if padded.Intersects(other) {
			return true
		}
	}
	return false
}

// acceptRoom commits the room: assigns its id, carves the interior and
// fills the room-id lookup grid.
func (g *generator) acceptRoom(room Room) {
	room.ID = len(g.rooms)
	g.rooms = append(g.rooms, room)

	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			g.grid.SetKind(x, y, KindRoom)
			g.roomAt[y][x] = room.ID
		}
	}
}

// buildWallRings converts every cave cell orthogonally touching a room
// interior into wall, forming the one-tile ring around each room.
func (g *generator) buildWallRings() {
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			if g.grid.KindAt(x, y) != KindCave {
				continue
			}
			if g.grid.CountOrthogonal(x, y, func(k Kind) bool { return k == KindRoom }) > 0 {
				g.grid.SetKind(x, y, KindWall)
			}
		}
	}
}

// roomIndexAt returns the id of the room owning the cell, or -1.
func (g *generator) roomIndexAt(x, y int) int {
	if !g.grid.InBounds(x, y) {
		return -1
	}
	return g.roomAt[y][x]
}

// adjacentRooms returns the distinct room ids orthogonally adjacent to
// the cell, in fixed neighbor order.
func (g *generator) adjacentRooms(x, y int) []int {
	var ids []int
	for _, d := range cardinal {
		id := g.roomIndexAt(x+d.X, y+d.Y)
		if id < 0 || g.grid.KindAt(x+d.X, y+d.Y) != KindRoom {
			continue
		}
		seen := false
		for _, existing := range ids {
			if existing == id {
				seen = true
				break
			}
		}
		if !seen {
			ids = append(ids, id)
		}
	}
	return ids
}
