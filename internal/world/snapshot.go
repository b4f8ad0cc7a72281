package world

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// RenderASCII returns the grid as text, one rune per cell kind, one line
// per row. This is a diagnostic format; gameplay persistence stores only
// the seed and regenerates.
func (l *Level) RenderASCII() string {
	var b strings.Builder
	b.Grow((l.Grid.Width + 1) * l.Grid.Height)
	for y := 0; y < l.Grid.Height; y++ {
		for x := 0; x < l.Grid.Width; x++ {
			b.WriteRune(l.Grid.KindAt(x, y).Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// TeleportPair is one symmetric pad pairing in snapshot form.
type TeleportPair struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Snapshot is the structured diagnostic form of a level.
type Snapshot struct {
	ID       string         `json:"id"`
	Seed     int64          `json:"seed"`
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	Checksum string         `json:"checksum"`
	Entrance Point          `json:"entrance"`
	Rooms    []Room         `json:"rooms"`
	Pairs    []TeleportPair `json:"teleport_pairs,omitempty"`
	Metrics  Metrics        `json:"metrics"`
}

// Snapshot builds the structured diagnostic record for the level.
func (l *Level) Snapshot() Snapshot {
	snap := Snapshot{
		ID:       l.ID.String(),
		Seed:     l.Seed,
		Width:    l.Grid.Width,
		Height:   l.Grid.Height,
		Checksum: fmt.Sprintf("%016x", l.Grid.Checksum()),
		Entrance: l.Entrance,
		Rooms:    l.Rooms,
		Metrics:  l.Metrics,
	}
	// Each symmetric pairing is emitted once, from its smaller endpoint,
	// sorted so the output is stable.
	for from, to := range l.teleports {
		if from.Y < to.Y || (from.Y == to.Y && from.X < to.X) {
			snap.Pairs = append(snap.Pairs, TeleportPair{From: from, To: to})
		}
	}
	sort.Slice(snap.Pairs, func(i, j int) bool {
		if snap.Pairs[i].From.Y != snap.Pairs[j].From.Y {
			return snap.Pairs[i].From.Y < snap.Pairs[j].From.Y
		}
		return snap.Pairs[i].From.X < snap.Pairs[j].From.X
	})
	return snap
}

// MarshalSnapshot renders the snapshot as indented JSON.
func (l *Level) MarshalSnapshot() ([]byte, error) {
	data, err := json.MarshalIndent(l.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal level snapshot: %w", err)
	}
	return data, nil
}
