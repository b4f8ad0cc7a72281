package game

import (
	"github.com/samdwyer/delvegen/internal/world"
)

// Config holds explorer configuration options.
type Config struct {
	// Seed drives dungeon generation. A seed of 0 means a random seed
	// will be drawn; the effective seed is shown in the metrics overlay.
	Seed int64

	// Width and Height override the level dimensions when positive.
	Width  int
	Height int

	// PreserveHidden keeps intentionally unreachable areas instead of
	// downgrading them.
	PreserveHidden bool
}

// worldConfig resolves the explorer options into generation parameters.
func (c Config) worldConfig() world.Config {
	cfg := world.DefaultConfig()
	cfg.Seed = c.Seed
	if c.Width > 0 {
		cfg.Width = c.Width
	}
	if c.Height > 0 {
		cfg.Height = c.Height
	}
	cfg.PreserveHidden = c.PreserveHidden
	return cfg
}
