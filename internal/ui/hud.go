//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// BarHeight is the pixel height of the status bar drawn below the grid.
const BarHeight = 18

// HUD renders a one-line status bar under the simulation view.
type HUD struct {
	sim    core.Sim
	bar    *ebiten.Image
	line   string
	paused bool
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim}
}

// Update refreshes the cached status line.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.paused = paused
	h.line = Status(h.sim, paused)
}

// Draw renders the bar at vertical offset y, spanning width pixels.
func (h *HUD) Draw(screen *ebiten.Image, y, width int) {
	if h == nil || width <= 0 {
		return
	}
	if h.bar == nil || h.bar.Bounds().Dx() != width {
		h.bar = ebiten.NewImage(width, BarHeight)
	}
	h.bar.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	if h.paused {
		fg = color.RGBA{R: 240, G: 190, B: 90, A: 255}
	}
	text.Draw(h.bar, h.line, basicfont.Face7x13, 6, 13, fg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(y))
	screen.DrawImage(h.bar, op)
}
