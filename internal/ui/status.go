package ui

import (
	"fmt"
	"strings"

	"torus-life/pkg/core"
)

// Status summarises a sim in one line: name, size, and whatever counters the
// sim exposes.
func Status(sim core.Sim, paused bool) string {
	size := sim.Size()
	parts := []string{fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H)}
	if gc, ok := sim.(core.GenerationCounter); ok {
		parts = append(parts, fmt.Sprintf("gen %d", gc.Generation()))
	}
	if pc, ok := sim.(core.PopulationCounter); ok {
		parts = append(parts, fmt.Sprintf("pop %d", pc.Population()))
	}
	if paused {
		parts = append(parts, "paused")
	}
	return strings.Join(parts, "  ")
}
