package world

import (
	"github.com/samdwyer/delvegen/internal/gamedata"
)

// assignFeatures runs after the structure is final: rooms get their types
// from door-count and distance heuristics, cosmetic features are spread
// from the embedded feature tables, and a few doors become secret or
// locked variants.
func (g *generator) assignFeatures() {
	g.assignRoomTypes()
	g.spreadCosmetics()
	g.placeSecretDoors()
	g.placeLockedDoors()
}

// assignRoomTypes tags the entrance, picks the farthest room as the boss
// room, elects a single-door room as treasure and classifies the rest by
// door count.
func (g *generator) assignRoomTypes() {
	if len(g.rooms) == 0 {
		return
	}

	g.rooms[g.entrance].Type = RoomStart
	start := g.rooms[g.entrance].CenterPoint()
	g.grid.Tag(start.X, start.Y, "entrance")

	bossID := -1
	bossDist := -1
	for id := range g.rooms {
		if id == g.entrance || g.rooms[id].Dropped {
			continue
		}
		dist := g.rooms[id].CenterPoint().ManhattanDistance(start)
		if dist > bossDist {
			bossID = id
			bossDist = dist
		}
	}
	if bossID >= 0 {
		g.rooms[bossID].Type = RoomBoss
		center := g.rooms[bossID].CenterPoint()
		g.grid.Tag(center.X, center.Y, "boss")
	}

	treasureID := -1
	for id := range g.rooms {
		if id == g.entrance || id == bossID || g.rooms[id].Dropped {
			continue
		}
		if g.roomDoorCount(id) == 1 {
			treasureID = id
			break
		}
	}
	if treasureID >= 0 {
		g.rooms[treasureID].Type = RoomTreasure
		center := g.rooms[treasureID].CenterPoint()
		g.grid.Tag(center.X, center.Y, "treasure")
	}

	for id := range g.rooms {
		if id == g.entrance || id == bossID || id == treasureID || g.rooms[id].Dropped {
			continue
		}
		switch doors := g.roomDoorCount(id); {
		case doors >= 3:
			g.rooms[id].Type = RoomConnector
		case doors == 1:
			g.rooms[id].Type = RoomDeadend
		default:
			g.rooms[id].Type = RoomPlain
		}
	}
}

// spreadCosmetics sprinkles feature tags over room floors using the
// embedded weighted feature tables. A missing or empty table silently
// disables cosmetics; generation never fails over decoration.
func (g *generator) spreadCosmetics() {
	const roomFeatureChance = 0.5

	registry, err := gamedata.LoadFeatureRegistry()
	if err != nil {
		return
	}

	for id := range g.rooms {
		room := g.rooms[id]
		if room.Dropped {
			continue
		}
		if g.rng.Float64() >= roomFeatureChance {
			continue
		}
		def := registry.PickRandom(g.rng, string(room.Type))
		if def == nil {
			continue
		}
		count := def.ClusterMin
		if spread := def.ClusterMax - def.ClusterMin; spread > 0 {
			count += g.rng.Intn(spread + 1)
		}
		for i := 0; i < count; i++ {
			x := room.X + g.rng.Intn(room.Width)
			y := room.Y + g.rng.Intn(room.Height)
			if g.grid.KindAt(x, y) == KindRoom {
				g.grid.Tag(x, y, def.ID)
			}
		}
	}
}

// placeSecretDoors converts a few doors of multi-door rooms into secret
// doors. A room always keeps at least one plain door, and the corridor
// behind a door may be the only way to rooms further downstream, so any
// conversion that cuts off a reachable room anywhere is reverted.
func (g *generator) placeSecretDoors() {
	if g.cfg.SecretDoorChance <= 0 {
		return
	}
	reachable := g.reachedRooms(g.bfsReached(true))
	for id := range g.rooms {
		if g.rooms[id].Dropped || id == g.entrance {
			continue
		}
		doors := g.ringDoors(id)
		if len(doors) < 2 {
			continue
		}
		// The first door stays plain unconditionally.
		for _, p := range doors[1:] {
			if g.grid.KindAt(p.X, p.Y) != KindDoor {
				continue
			}
			if g.rng.Float64() >= g.cfg.SecretDoorChance {
				continue
			}
			g.grid.SetKind(p.X, p.Y, KindSecretDoor)
			after := g.reachedRooms(g.bfsReached(true))
			for rid := range reachable {
				if reachable[rid] && !after[rid] {
					g.grid.SetKind(p.X, p.Y, KindDoor)
					after = nil
					break
				}
			}
			if after != nil {
				reachable = after
			}
		}
	}
}

// placeLockedDoors locks doors guarding boss and treasure rooms. Locked
// doors stay walkable, so reachability is unaffected.
func (g *generator) placeLockedDoors() {
	if g.cfg.LockedDoorChance <= 0 {
		return
	}
	for id := range g.rooms {
		room := g.rooms[id]
		if room.Dropped || (room.Type != RoomBoss && room.Type != RoomTreasure) {
			continue
		}
		for _, p := range g.ringDoors(id) {
			if g.grid.KindAt(p.X, p.Y) != KindDoor {
				continue
			}
			if g.rng.Float64() < g.cfg.LockedDoorChance {
				g.grid.SetKind(p.X, p.Y, KindLockedDoor)
			}
		}
	}
}

// ringDoors lists doorway cells on the room's wall ring in a fixed scan
// order: top, bottom, left, right.
func (g *generator) ringDoors(id int) []Point {
	room := g.rooms[id]
	var doors []Point
	check := func(x, y int) {
		switch g.grid.KindAt(x, y) {
		case KindDoor, KindSecretDoor, KindLockedDoor:
			doors = append(doors, Point{x, y})
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
	return doors
}
