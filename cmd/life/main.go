//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"zlife/internal/app"
	"zlife/internal/core"
	_ "zlife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}

	game := app.New(sim, cfg)
	if cfg.OpenPath != "" {
		game.Open(cfg.OpenPath)
	}

	ebiten.SetWindowTitle("zlife — " + sim.Name())
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
