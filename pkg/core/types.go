package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a host needs to drive and draw a grid.
// Cells returns the current buffer, one byte per cell in row-major order; it
// is only valid until the next Reset or Step.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// CellToggler is implemented by sims whose cells can be flipped by the host,
// typically in response to a click.
type CellToggler interface {
	ToggleCell(row, col uint32)
}

// PopulationCounter reports the number of live cells.
type PopulationCounter interface {
	Population() int
}

// GenerationCounter reports how many steps have run since the last reset.
type GenerationCounter interface {
	Generation() uint64
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up the named factory and constructs a Sim from cfg.
func Build(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %v)", name, Names())
	}
	sim, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("build sim %q: %w", name, err)
	}
	return sim, nil
}
