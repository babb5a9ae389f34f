package app

import (
	"fmt"
	"log"

	"torus-life/internal/pattern"
	"torus-life/pkg/core"
	"torus-life/pkg/sims/life"
)

type worldProvider interface {
	World() *life.World
}

// Session owns the running sim together with the seed pattern that is
// stamped onto it after every reset.
type Session struct {
	sim     core.Sim
	pattern *pattern.Pattern
	seed    int64
}

// NewSession builds the configured sim, resolves the optional pattern and
// performs the initial reset.
func NewSession(cfg *Config) (*Session, error) {
	sim, err := core.Build(cfg.Sim, cfg.SimOptions())
	if err != nil {
		return nil, err
	}
	s := &Session{sim: sim, seed: cfg.Seed}
	if cfg.Pattern != "" {
		p, err := pattern.Resolve(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		if p.Offset == (pattern.Offset{}) {
			size := sim.Size()
			p = p.Centered(uint32(size.W), uint32(size.H))
		}
		log.Printf("stamping pattern %s (%d live cells)", p.Name, p.Alive())
		s.pattern = p
	}
	if err := s.Reset(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Sim exposes the running simulation.
func (s *Session) Sim() core.Sim { return s.sim }

// Seed returns the seed used by the last reset.
func (s *Session) Seed() int64 { return s.seed }

// Reset refills the sim with seed and re-stamps the pattern.
func (s *Session) Reset(seed int64) error {
	log.Printf("resetting %s (seed %d)", s.sim.Name(), seed)
	s.seed = seed
	s.sim.Reset(seed)
	if s.pattern == nil {
		return nil
	}
	wp, ok := s.sim.(worldProvider)
	if !ok {
		return fmt.Errorf("sim %q does not accept patterns", s.sim.Name())
	}
	return s.pattern.Apply(wp.World())
}

// Clear kills every cell when the sim exposes its world.
func (s *Session) Clear() bool {
	wp, ok := s.sim.(worldProvider)
	if !ok {
		return false
	}
	log.Printf("clearing %s", s.sim.Name())
	wp.World().Reset()
	return true
}

// Toggle flips one cell when the sim supports it.
func (s *Session) Toggle(row, col uint32) bool {
	t, ok := s.sim.(core.CellToggler)
	if !ok {
		return false
	}
	log.Printf("toggling cell (%d, %d)", row, col)
	t.ToggleCell(row, col)
	return true
}

// Step advances the sim by one generation.
func (s *Session) Step() { s.sim.Step() }
