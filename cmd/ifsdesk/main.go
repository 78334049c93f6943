// Command ifsdesk is the desktop front end of the visualizer, built on
// Ebitengine.
//
// Drag or click on the alpha plane to choose α, scroll to zoom, use the
// arrow keys (with shift for fine steps) to nudge it. Press Tab to type α,
// Enter to apply it. Point at the angle picker to choose n.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	revolving "github.com/marben/revolving_ifs"
	"github.com/marben/revolving_ifs/engine"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	cfg := engine.DefaultConfig()
	preset := flag.String("preset", "default", "starting parameters: default, gamma or expanding")
	flag.IntVar(&cfg.MaxGenerations, "gen", 12, "generations")
	flag.Float64Var(&cfg.Decay, "decay", cfg.Decay, "point size decay per generation")
	plotSize := flag.Int("size", 600, "plot size in pixels")
	flag.Parse()

	p, ok := revolving.Presets[*preset]
	if !ok {
		return fmt.Errorf("unknown preset %q", *preset)
	}

	g, err := newGame(cfg, p, *plotSize)
	if err != nil {
		return err
	}

	w, h := g.layout.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Revolving IFS")
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("RunGame: %w", err)
	}
	return nil
}
