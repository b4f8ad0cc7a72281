package world

// Default generation parameters. A 75x75 grid with these settings carves
// a comfortably dense dungeon; everything is overridable per call.
const (
	DefaultWidth  = 75
	DefaultHeight = 75

	defaultMinRooms    = 8
	defaultMaxRooms    = 14
	defaultMinRoomSize = 5
	defaultMaxRoomSize = 11

	// minLeafSize is the BSP stop threshold; leaves must hold a minimum
	// size room plus its wall ring and a placement margin.
	minLeafSize = 9

	// roomPadding is the clearance kept between room footprints so each
	// room's wall ring never merges with a neighbor's interior.
	roomPadding = 2

	// placementAttemptsPerRoom bounds the placement loop; running out is
	// a graceful degradation, never an error.
	placementAttemptsPerRoom = 15
)

// Config holds every generation parameter for one call. The value is
// normalized once at the start of generation and immutable afterwards;
// there is no ambient flag lookup anywhere in the pipeline.
type Config struct {
	Width  int
	Height int

	// MinRooms and MaxRooms bound the target room count. The generator
	// may place fewer when the placement budget runs out.
	MinRooms int
	MaxRooms int

	// MinRoomSize and MaxRoomSize bound room dimensions, interior only
	// (the wall ring is extra).
	MinRoomSize int
	MaxRoomSize int

	// Seed drives the single RNG instance owned by the call. Zero means
	// draw a random seed once; the effective seed is echoed on the Level
	// so every dungeon is reproducible.
	Seed int64

	// IrregularChance is the probability a corridor is carved as a
	// jittered walk instead of an L-shaped pair of straight segments.
	IrregularChance float64

	// LoopChance is the probability a non-MST candidate edge is kept as
	// an extra connection.
	LoopChance float64

	// DoorCarveChance gates outward carving during door repair, so
	// repairs do not grow runaway corridors.
	DoorCarveChance float64

	// SecretDoorChance converts eligible doors of multi-door rooms into
	// secret doors. The room always keeps at least one plain door.
	SecretDoorChance float64

	// LockedDoorChance locks doors on boss and treasure rooms.
	LockedDoorChance float64

	// PreserveHidden disables the final unreachable-room downgrade, for
	// intentionally hidden areas.
	PreserveHidden bool
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() Config {
	return Config{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		MinRooms:         defaultMinRooms,
		MaxRooms:         defaultMaxRooms,
		MinRoomSize:      defaultMinRoomSize,
		MaxRoomSize:      defaultMaxRoomSize,
		IrregularChance:  0.35,
		LoopChance:       0.15,
		DoorCarveChance:  0.75,
		SecretDoorChance: 0.05,
		LockedDoorChance: 0.25,
	}
}

// normalized clamps the config into usable ranges. Generation degrades
// rather than failing, and that starts with never accepting parameters
// that cannot produce a dungeon.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.Width < 24 {
		c.Width = d.Width
	}
	if c.Height < 24 {
		c.Height = d.Height
	}
	if c.MinRoomSize < 3 {
		c.MinRoomSize = d.MinRoomSize
	}
	if c.MaxRoomSize < c.MinRoomSize {
		c.MaxRoomSize = c.MinRoomSize
	}
	// Rooms plus ring plus margin must fit the grid.
	if limit := min(c.Width, c.Height) - 6; c.MaxRoomSize > limit {
		c.MaxRoomSize = limit
	}
	if c.MinRoomSize > c.MaxRoomSize {
		c.MinRoomSize = c.MaxRoomSize
	}
	if c.MinRooms < 1 {
		c.MinRooms = d.MinRooms
	}
	if c.MaxRooms < c.MinRooms {
		c.MaxRooms = c.MinRooms
	}
	c.IrregularChance = clamp01(c.IrregularChance)
	c.LoopChance = clamp01(c.LoopChance)
	c.DoorCarveChance = clamp01(c.DoorCarveChance)
	c.SecretDoorChance = clamp01(c.SecretDoorChance)
	c.LockedDoorChance = clamp01(c.LockedDoorChance)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
