package render

import (
	"bufio"
	"fmt"
	"io"
)

// TextStyle selects the runes used by WriteText.
type TextStyle struct {
	Alive rune
	Dead  rune
}

// DefaultTextStyle uses filled and hollow squares.
func DefaultTextStyle() TextStyle {
	return TextStyle{Alive: '◼', Dead: '◻'}
}

// WriteText prints cells as width-long lines, one rune per cell.
func (s TextStyle) WriteText(w io.Writer, cells []uint8, width int) error {
	if width <= 0 || len(cells)%width != 0 {
		return fmt.Errorf("buffer of %d cells does not split into rows of %d", len(cells), width)
	}
	bw := bufio.NewWriter(w)
	for i, c := range cells {
		r := s.Dead
		if c != 0 {
			r = s.Alive
		}
		bw.WriteRune(r)
		if (i+1)%width == 0 {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
