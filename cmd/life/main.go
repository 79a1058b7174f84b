//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/pkg/core"
	_ "lifegrid/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Fatalf("%v (available: %v)", err, core.Names())
	}

	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}
	if pf, ok := sim.(interface{ PatternFits() bool }); ok && !pf.PatternFits() {
		log.Printf("pattern %s does not fit a %dx%d board; starting empty", cfg.Pattern, cfg.Width, cfg.Height)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("lifegrid - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
