package life

import "torus-life/pkg/core"

// Sim adapts a World to the core.Sim host contract.
type Sim struct {
	world *World
	fill  Fill
}

// NewSim builds a World from cfg and wraps it. The world starts in the
// configured fill with seed 0.
func NewSim(cfg Config) (*Sim, error) {
	w, err := New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	s := &Sim{world: w, fill: cfg.Fill}
	if err := w.Fill(cfg.Fill, 0); err != nil {
		return nil, err
	}
	return s, nil
}

// World exposes the wrapped engine.
func (s *Sim) World() *World { return s.world }

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size {
	return core.Size{W: int(s.world.Width()), H: int(s.world.Height())}
}

// Reset reapplies the configured fill policy.
func (s *Sim) Reset(seed int64) {
	// The fill was validated in NewSim.
	_ = s.world.Fill(s.fill, seed)
}

// Step advances one generation.
func (s *Sim) Step() { s.world.Tick() }

// Cells exposes the current generation as bytes.
func (s *Sim) Cells() []uint8 { return s.world.View().Bytes() }

// ToggleCell flips a single cell.
func (s *Sim) ToggleCell(row, col uint32) { s.world.ToggleCell(row, col) }

// Population returns the number of live cells.
func (s *Sim) Population() int { return s.world.Population() }

// Generation returns the number of steps since the last reset.
func (s *Sim) Generation() uint64 { return s.world.Generation() }

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		s, err := NewSim(c)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
