package render

// CellAt maps a screen position on a grid of w x h cells drawn at scale
// pixels per cell to (row, col). ok is false outside the grid.
func CellAt(x, y, scale, w, h int) (row, col uint32, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	c, r := x/scale, y/scale
	if c >= w || r >= h {
		return 0, 0, false
	}
	return uint32(r), uint32(c), true
}
