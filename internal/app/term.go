package app

import (
	"context"
	"fmt"
	"io"

	"torus-life/internal/render"
	"torus-life/internal/ui"
	"torus-life/pkg/core"
)

const ansiHome = "\x1b[H\x1b[2J"

// TermOptions controls RunTerminal.
type TermOptions struct {
	Generations int
	TPS         int
	Style       render.TextStyle
	// ClearScreen redraws each frame in place using ANSI escapes.
	ClearScreen bool
}

// RunTerminal prints the current generation, then steps and prints until
// opts.Generations frames have been stepped or ctx is done. Zero generations
// runs until cancelled.
func RunTerminal(ctx context.Context, w io.Writer, s *Session, opts TermOptions) error {
	clock := core.NewFixedStep(opts.TPS)
	size := s.Sim().Size()
	for gen := 0; ; gen++ {
		if opts.ClearScreen {
			if _, err := io.WriteString(w, ansiHome); err != nil {
				return err
			}
		}
		if err := opts.Style.WriteText(w, s.Sim().Cells(), size.W); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, ui.Status(s.Sim(), false)); err != nil {
			return err
		}
		if opts.Generations > 0 && gen >= opts.Generations {
			return nil
		}
		if err := clock.Wait(ctx); err != nil {
			return err
		}
		s.Step()
	}
}
