// Package main is the entry point for delvegen.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/delvegen/internal/game"
	"github.com/samdwyer/delvegen/internal/telemetry"
	"github.com/samdwyer/delvegen/internal/world"
)

func main() {
	seed := flag.Int64("seed", 0, "generation seed (0 picks a random one)")
	width := flag.Int("width", 0, "level width (0 uses the default)")
	height := flag.Int("height", 0, "level height (0 uses the default)")
	ascii := flag.Bool("ascii", false, "print the level and its snapshot instead of exploring")
	preserveHidden := flag.Bool("preserve-hidden", false, "keep unreachable areas instead of downgrading them")
	flag.Parse()

	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Continuing without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if *ascii {
		if err := dumpLevel(ctx, *seed, *width, *height, *preserveHidden); err != nil {
			log.Fatalf("Failed to dump level: %v", err)
		}
		return
	}

	g, err := game.New(game.Config{
		Seed:           *seed,
		Width:          *width,
		Height:         *height,
		PreserveHidden: *preserveHidden,
	})
	if err != nil {
		log.Fatalf("Failed to initialize explorer: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		g.Close()
		log.Fatalf("Explorer error: %v", err)
	}
}

// dumpLevel generates one level and writes its ASCII form plus the JSON
// snapshot to stdout.
func dumpLevel(ctx context.Context, seed int64, width, height int, preserveHidden bool) error {
	cfg := world.DefaultConfig()
	cfg.Seed = seed
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	cfg.PreserveHidden = preserveHidden

	level := world.Generate(ctx, cfg)

	fmt.Fprint(os.Stdout, level.RenderASCII())
	snapshot, err := level.MarshalSnapshot()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s\n", snapshot)
	return nil
}
