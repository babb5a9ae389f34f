package ui

import (
	"testing"

	"torus-life/pkg/core"
	"torus-life/pkg/sims/life"
)

type bareSim struct{}

func (bareSim) Name() string { return "bare" }
func (bareSim) Size() core.Size { return core.Size{W: 2, H: 1} }
func (bareSim) Reset(int64) {}
func (bareSim) Step() {}
func (bareSim) Cells() []uint8 { return make([]uint8, 2) }

func TestStatus(t *testing.T) {
	sim, err := life.NewSim(life.Config{Width: 3, Height: 3, Fill: life.FillDead})
	if err != nil {
		t.Fatalf("new sim: %v", err)
	}
	sim.ToggleCell(0, 0)
	sim.Step()

	if got, want := Status(sim, true), "life 3x3  gen 1  pop 0  paused"; got != want {
		t.Fatalf("Status = %q, want %q", got, want)
	}
	if got, want := Status(bareSim{}, false), "bare 2x1"; got != want {
		t.Fatalf("Status = %q, want %q", got, want)
	}
}
