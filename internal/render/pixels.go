package render

import (
	"fmt"
	"image/color"
)

// Palette maps the two cell states, and the optional grid lines, to colors.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
	Grid  color.RGBA
}

// DefaultPalette draws black cells on white with light grey grid lines.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{A: 255},
		Dead:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Grid:  color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 255},
	}
}

// FillRGBA converts binary cell data (0/1) into RGBA pixels in buf, which
// must hold four bytes per cell.
func (p Palette) FillRGBA(buf []byte, cells []uint8) error {
	if len(buf) != 4*len(cells) {
		return fmt.Errorf("pixel buffer holds %d bytes, need %d", len(buf), 4*len(cells))
	}
	for i, c := range cells {
		col := p.Dead
		if c != 0 {
			col = p.Alive
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
	return nil
}
