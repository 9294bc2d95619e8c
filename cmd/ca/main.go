//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"canvas-toys/internal/app"
	"canvas-toys/internal/core"
	_ "canvas-toys/internal/sims/conway"
	_ "canvas-toys/internal/sims/orbit"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.New(cfg.Sim, cfg.Set.Map())
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	ctl := app.NewController(sim, cfg.Seed, nil)
	game := app.New(ctl, app.FitScale(cfg.Scale, sim.Size()))

	tps := cfg.TPS
	if tps <= 0 {
		tps = core.TPSFor(app.IntervalFor(sim))
	}

	ebiten.SetWindowTitle("canvas-toys — " + sim.Name())
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
