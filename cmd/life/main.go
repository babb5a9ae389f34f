//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"torus-life/internal/app"
	"torus-life/internal/host"
	"torus-life/internal/ui"
	_ "torus-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	host.Init()
	defer host.ReportPanic()

	cfg, err := app.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatal(err)
	}

	sim := session.Sim()
	size := sim.Size()
	log.Printf("starting %s %dx%d at %d tps", sim.Name(), size.W, size.H, cfg.TPS)

	ebiten.SetWindowTitle("torus-life: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale+ui.BarHeight)

	if err := ebiten.RunGame(app.New(session, cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
