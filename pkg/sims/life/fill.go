package life

import (
	"errors"
	"fmt"

	"torus-life/pkg/core"
)

// Fill names a deterministic initial-population policy.
type Fill string

const (
	// FillDead leaves every cell dead.
	FillDead Fill = "dead"
	// FillPattern makes cell i alive when i%2 == 0 or i%7 == 0.
	FillPattern Fill = "pattern"
	// FillRandom draws each cell from a PCG stream keyed by the seed.
	FillRandom Fill = "random"
)

// ErrUnknownFill is returned for fill names outside the known set.
var ErrUnknownFill = errors.New("life: unknown fill policy")

// ParseFill validates a fill policy name.
func ParseFill(s string) (Fill, error) {
	switch f := Fill(s); f {
	case FillDead, FillPattern, FillRandom:
		return f, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFill, s)
}

// Fill repopulates the world according to policy and rewinds the generation
// counter. The seed is only used by FillRandom.
func (w *World) Fill(policy Fill, seed int64) error {
	switch policy {
	case FillDead:
		clear(w.cells)
	case FillPattern:
		w.fillPattern()
	case FillRandom:
		rng := core.NewRNG(seed)
		for i := range w.cells {
			w.cells[i] = Dead
			if rng.Bool() {
				w.cells[i] = Alive
			}
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownFill, policy)
	}
	w.generation = 0
	w.version++
	return nil
}

func (w *World) fillPattern() {
	for i := range w.cells {
		w.cells[i] = Dead
		if i%2 == 0 || i%7 == 0 {
			w.cells[i] = Alive
		}
	}
}
