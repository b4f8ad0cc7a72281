package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delvegen/internal/gamedata"
	"github.com/samdwyer/delvegen/internal/world"
)

// Renderer draws a generated level to the screen. Cosmetic features are
// drawn with the glyph and color from the embedded feature tables;
// secret doors render as plain wall until revealed.
type Renderer struct {
	screen   *Screen
	features *gamedata.FeatureRegistry
}

// NewRenderer creates a renderer for the given screen. The feature
// registry may be nil, in which case feature tags are not drawn.
func NewRenderer(screen *Screen, features *gamedata.FeatureRegistry) *Renderer {
	return &Renderer{screen: screen, features: features}
}

// Render draws the level and the explorer cursor. Levels larger than the
// terminal scroll: the camera follows the cursor and clamps at the level
// edges.
func (r *Renderer) Render(level *world.Level, cursorX, cursorY int) {
	r.screen.Clear()

	viewW, viewH := r.screen.Viewport()
	offX, offY := r.cameraOffset(level, cursorX, cursorY)

	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < viewW; sx++ {
			x, y := sx+offX, sy+offY
			if x >= level.Grid.Width || y >= level.Grid.Height {
				continue
			}
			ch, style := r.cellAppearance(level, x, y)
			r.screen.SetContent(sx, sy, ch, style)
		}
	}

	cursorStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(cursorX-offX, cursorY-offY, '@', cursorStyle)

	r.screen.Show()
}

// cameraOffset keeps the cursor centered in the viewport, clamped so the
// view never scrolls past the level.
func (r *Renderer) cameraOffset(level *world.Level, cursorX, cursorY int) (int, int) {
	viewW, viewH := r.screen.Viewport()
	offX := min(max(cursorX-viewW/2, 0), max(level.Grid.Width-viewW, 0))
	offY := min(max(cursorY-viewH/2, 0), max(level.Grid.Height-viewH, 0))
	return offX, offY
}

// cellAppearance resolves one cell to a rune and style. Feature tags win
// over the base kind glyph so decorated floors stand out.
func (r *Renderer) cellAppearance(level *world.Level, x, y int) (rune, tcell.Style) {
	kind := level.KindAt(x, y)

	if kind == world.KindRoom && r.features != nil {
		for _, tag := range level.FeaturesAt(x, y) {
			def := r.features.GetByID(tag)
			if def == nil {
				continue
			}
			color, err := gamedata.ParseHexColor(def.Color)
			if err != nil {
				color = tcell.ColorWhite
			}
			return def.GlyphRune(), tcell.StyleDefault.Foreground(color)
		}
	}

	switch kind {
	case world.KindWall, world.KindSecretDoor:
		// Secret doors look like wall until the player finds them.
		return world.KindWall.Rune(), tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.KindRoom:
		return kind.Rune(), tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.KindTunnel:
		return kind.Rune(), tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	case world.KindDoor:
		return kind.Rune(), tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	case world.KindLockedDoor:
		return kind.Rune(), tcell.StyleDefault.Foreground(tcell.ColorGoldenrod)
	case world.KindTeleport:
		return kind.Rune(), tcell.StyleDefault.Foreground(tcell.ColorMediumPurple).Bold(true)
	default:
		return kind.Rune(), tcell.StyleDefault
	}
}

// RenderMessage displays a message on the status row.
func (r *Renderer) RenderMessage(msg string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawText(0, r.screen.StatusRow(), msg, style)
	r.screen.Show()
}

// RenderMetrics draws the generation counters as an overlay panel.
func (r *Renderer) RenderMetrics(level *world.Level) {
	m := level.Metrics
	lines := []string{
		fmt.Sprintf("seed: %d  checksum: %016x", level.Seed, level.Grid.Checksum()),
		fmt.Sprintf("rooms: %d placed / %d requested, %d dropped", m.RoomsPlaced, m.RoomsRequested, m.RoomsDropped),
		fmt.Sprintf("doors: %d created, %d downgraded, %d chains collapsed", m.DoorsCreated, m.DoorsDowngraded, m.ChainsCollapsed),
		fmt.Sprintf("repairs: %d, orphan fixes: %d, teleport pairs: %d", m.RepairsPerformed, m.OrphanFixes, m.TeleportPairs),
		fmt.Sprintf("pruned: %d clusters, %d tunnels, %d nubs", m.DoorClustersReduced, m.TunnelsPruned, m.CornerNubsPruned),
		fmt.Sprintf("runtime: %dms", m.RuntimeMS),
	}

	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.ColorDarkBlue)
	for row, line := range lines {
		r.screen.DrawText(2, 1+row, line, style)
	}
	r.screen.Show()
}
