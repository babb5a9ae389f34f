package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"torus-life/internal/app"
	"torus-life/internal/host"
	"torus-life/internal/render"
	_ "torus-life/pkg/sims/life"
)

func main() {
	host.Init()
	defer host.ReportPanic()

	style := render.DefaultTextStyle()
	alive := flag.String("alive", string(style.Alive), "glyph for live cells")
	dead := flag.String("dead", string(style.Dead), "glyph for dead cells")
	noClear := flag.Bool("no-clear", false, "append frames instead of redrawing in place")

	cfg, err := app.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	style.Alive = firstRune(*alive, style.Alive)
	style.Dead = firstRune(*dead, style.Dead)

	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = app.RunTerminal(ctx, os.Stdout, session, app.TermOptions{
		Generations: cfg.Generations,
		TPS:         cfg.TPS,
		Style:       style,
		ClearScreen: !*noClear,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
