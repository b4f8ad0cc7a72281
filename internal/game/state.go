// Package game provides the interactive level explorer loop.
package game

// Mode represents the current explorer mode.
type Mode int

const (
	// ModeExplore is the default mode where the cursor walks the level.
	ModeExplore Mode = iota
	// ModeMetrics overlays the generation counters on the map.
	ModeMetrics
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeExplore:
		return "explore"
	case ModeMetrics:
		return "metrics"
	default:
		return "unknown"
	}
}
