package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delvegen/internal/gamedata"
	"github.com/samdwyer/delvegen/internal/telemetry"
	"github.com/samdwyer/delvegen/internal/ui"
	"github.com/samdwyer/delvegen/internal/world"
)

// Game holds the explorer state: a generated level and a cursor walking
// it. The explorer exercises the level's full query surface: walkability,
// teleport pads and secret door reveals.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	level    *world.Level
	x, y     int
	mode     Mode
	status   string
	running  bool
}

// New creates a new explorer instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	// Missing feature tables only disable feature rendering.
	features, _ := gamedata.LoadFeatureRegistry()

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, features),
		mode:     ModeExplore,
		running:  true,
	}, nil
}

// Run generates the level and executes the explorer loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	g.level = world.Generate(ctx, g.cfg.worldConfig())
	g.x, g.y = g.level.Entrance.X, g.level.Entrance.Y
	initSpan.SetAttributes(
		attribute.Int64("dungeon.seed", g.level.Seed),
		attribute.Int("dungeon.rooms", len(g.level.Rooms)),
		attribute.Int("explorer.start_x", g.x),
		attribute.Int("explorer.start_y", g.y),
	)
	initSpan.End()

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

func (g *Game) render() {
	g.renderer.Render(g.level, g.x, g.y)
	if g.mode == ModeMetrics {
		g.renderer.RenderMetrics(g.level)
	}
	if g.status != "" {
		g.renderer.RenderMessage(g.status)
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(0, -1)
	case tcell.KeyDown:
		g.tryMove(0, 1)
	case tcell.KeyLeft:
		g.tryMove(-1, 0)
	case tcell.KeyRight:
		g.tryMove(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'h':
			g.tryMove(-1, 0)
		case 'j':
			g.tryMove(0, 1)
		case 'k':
			g.tryMove(0, -1)
		case 'l':
			g.tryMove(1, 0)
		case 'm', 'M':
			if g.mode == ModeMetrics {
				g.mode = ModeExplore
			} else {
				g.mode = ModeMetrics
			}
		}
	}
}

// tryMove attempts to move the cursor by the given delta. Bumping into a
// secret door reveals it; stepping onto a teleport pad follows the
// pairing.
func (g *Game) tryMove(dx, dy int) {
	g.status = ""
	newX := g.x + dx
	newY := g.y + dy

	if !g.level.IsWalkable(newX, newY) {
		if g.level.RevealSecretDoor(newX, newY) {
			g.status = "You discover a secret door!"
		}
		return
	}

	g.x, g.y = newX, newY

	if dest, ok := g.level.TeleportDestination(g.x, g.y); ok {
		g.x, g.y = dest.X, dest.Y
		g.status = "The teleport pad hums and the world shifts."
	}

	if id := g.level.RoomIndexAt(g.x, g.y); id >= 0 {
		room := g.level.Rooms[id]
		if room.Type != world.RoomPlain {
			g.status = "You are in the " + string(room.Type) + " room."
		}
	}
}

// Close cleans up explorer resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
