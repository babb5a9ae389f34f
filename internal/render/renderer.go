//go:build ebiten

package render

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a cell buffer into a single RGBA image and draws it
// scaled, optionally with grid lines between cells.
type GridPainter struct {
	w, h    int
	palette Palette
	img     *ebiten.Image
	pixel   *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, palette: palette, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	gp.pixel = ebiten.NewImage(1, 1)
	gp.pixel.Fill(color.White)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int, grid bool) {
	if err := gp.palette.FillRGBA(gp.buf, cells); err != nil {
		log.Printf("render: %v", err)
		return
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)

	if grid && scale >= 4 {
		gp.drawGrid(dst, scale)
	}
}

func (gp *GridPainter) drawGrid(dst *ebiten.Image, scale int) {
	width, height := float64(gp.w*scale), float64(gp.h*scale)
	for x := 0; x <= gp.w; x++ {
		gp.line(dst, float64(x*scale), 0, 1, height)
	}
	for y := 0; y <= gp.h; y++ {
		gp.line(dst, 0, float64(y*scale), width, 1)
	}
}

func (gp *GridPainter) line(dst *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(gp.palette.Grid)
	dst.DrawImage(gp.pixel, op)
}

// CellAt maps a screen position to grid coordinates.
func (gp *GridPainter) CellAt(x, y, scale int) (row, col uint32, ok bool) {
	return CellAt(x, y, scale, gp.w, gp.h)
}
