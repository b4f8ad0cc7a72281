package world

import (
	"go.opentelemetry.io/otel/attribute"
)

// Metrics records everything a generation call did. The counters are
// named struct fields rather than a keyed map so a renamed counter is a
// compile error, not a silently missing key. The struct is write-only
// during generation and read-only afterwards.
type Metrics struct {
	RoomsRequested      int   `json:"rooms_requested"`
	RoomsPlaced         int   `json:"rooms_placed"`
	DoorsCreated        int   `json:"doors_created"`
	DoorsDowngraded     int   `json:"doors_downgraded"`
	RepairsPerformed    int   `json:"repairs_performed"`
	ChainsCollapsed     int   `json:"chains_collapsed"`
	OrphanFixes         int   `json:"orphan_fixes"`
	RoomsDropped        int   `json:"rooms_dropped"`
	DoorClustersReduced int   `json:"door_clusters_reduced"`
	TunnelsPruned       int   `json:"tunnels_pruned"`
	CornerNubsPruned    int   `json:"corner_nubs_pruned"`
	TeleportPairs       int   `json:"teleport_pairs"`
	RuntimeMS           int64 `json:"runtime_ms"`

	// PhaseMS holds per-phase wall time keyed by phase name.
	PhaseMS map[string]int64 `json:"phase_ms"`
}

func newMetrics() Metrics {
	return Metrics{PhaseMS: make(map[string]int64)}
}

// spanAttributes flattens the counters for the generation span.
func (m *Metrics) spanAttributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("dungeon.rooms_requested", m.RoomsRequested),
		attribute.Int("dungeon.rooms_placed", m.RoomsPlaced),
		attribute.Int("dungeon.doors_created", m.DoorsCreated),
		attribute.Int("dungeon.doors_downgraded", m.DoorsDowngraded),
		attribute.Int("dungeon.repairs_performed", m.RepairsPerformed),
		attribute.Int("dungeon.chains_collapsed", m.ChainsCollapsed),
		attribute.Int("dungeon.orphan_fixes", m.OrphanFixes),
		attribute.Int("dungeon.rooms_dropped", m.RoomsDropped),
		attribute.Int("dungeon.door_clusters_reduced", m.DoorClustersReduced),
		attribute.Int("dungeon.tunnels_pruned", m.TunnelsPruned),
		attribute.Int("dungeon.corner_nubs_pruned", m.CornerNubsPruned),
		attribute.Int("dungeon.teleport_pairs", m.TeleportPairs),
		attribute.Int64("dungeon.runtime_ms", m.RuntimeMS),
	}
}
