package life

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultWidth and DefaultHeight size the grid built by NewDefault.
	DefaultWidth  = 64
	DefaultHeight = 64
)

var (
	// ErrZeroDimension is returned when a world is requested with a zero
	// width or height.
	ErrZeroDimension = errors.New("life: width and height must be positive")
	// ErrTooLarge is returned when width*height cannot be addressed.
	ErrTooLarge = errors.New("life: grid too large")
)

// Point is a grid coordinate already reduced into [0,height) x [0,width).
type Point struct {
	Row uint32
	Col uint32
}

// World implements Conway's Game of Life on a toroidal grid. Cells are stored
// row-major. A World has a single owner and is not safe for concurrent use.
type World struct {
	width, height uint32
	cells         []Cell
	next          []Cell

	generation uint64
	// version advances on every mutation and stamps views.
	version uint64
}

// New returns an all-dead world with the provided dimensions.
func New(width, height uint32) (*World, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("new world %dx%d: %w", width, height, ErrZeroDimension)
	}
	total := uint64(width) * uint64(height)
	if total > math.MaxInt {
		return nil, fmt.Errorf("new world %dx%d: %w", width, height, ErrTooLarge)
	}
	return &World{
		width:  width,
		height: height,
		cells:  make([]Cell, total),
		next:   make([]Cell, total),
	}, nil
}

// NewDefault returns a DefaultWidth x DefaultHeight world seeded with
// FillPattern.
func NewDefault() *World {
	w, _ := New(DefaultWidth, DefaultHeight)
	w.fillPattern()
	return w
}

// Width returns the number of columns.
func (w *World) Width() uint32 { return w.width }

// Height returns the number of rows.
func (w *World) Height() uint32 { return w.height }

// Generation returns the number of ticks since construction or the last fill.
func (w *World) Generation() uint64 { return w.generation }

// Cells exposes the current generation. The slice is only valid until the
// next mutating call; use View when validity needs to be checked.
func (w *World) Cells() []Cell { return w.cells }

// Resolve wraps (row, col) onto the torus.
func (w *World) Resolve(row, col uint32) Point {
	return Point{Row: row % w.height, Col: col % w.width}
}

// Index returns the buffer offset of a resolved point.
func (w *World) Index(p Point) int {
	return int(p.Row)*int(w.width) + int(p.Col)
}

// Neighbors returns the Moore neighbourhood of p in row-offset-major order.
// On grids narrower than three cells a neighbour may repeat or coincide with
// p itself; each offset still counts once.
func (w *World) Neighbors(p Point) [8]Point {
	h, wd := uint64(w.height), uint64(w.width)
	rows := [3]uint64{h - 1, 0, 1}
	cols := [3]uint64{wd - 1, 0, 1}

	var out [8]Point
	n := 0
	for i, dr := range rows {
		for j, dc := range cols {
			if i == 1 && j == 1 {
				continue
			}
			out[n] = Point{
				Row: uint32((uint64(p.Row) + dr) % h),
				Col: uint32((uint64(p.Col) + dc) % wd),
			}
			n++
		}
	}
	return out
}

// LiveNeighbors counts the live cells around p.
func (w *World) LiveNeighbors(p Point) int {
	count := 0
	for _, n := range w.Neighbors(p) {
		count += int(w.cells[w.Index(n)])
	}
	return count
}

// NextState applies the Life rule to p against the current generation.
func (w *World) NextState(p Point) Cell {
	cell := w.cells[w.Index(p)]
	n := w.LiveNeighbors(p)
	switch {
	case cell == Alive && n < 2:
		return Dead
	case cell == Alive && (n == 2 || n == 3):
		return Alive
	case cell == Alive && n > 3:
		return Dead
	case cell == Dead && n == 3:
		return Alive
	default:
		return cell
	}
}

// Tick advances the world by one generation. Every cell is evaluated against
// the unmodified current generation before the buffers are swapped.
func (w *World) Tick() {
	for row := uint32(0); row < w.height; row++ {
		for col := uint32(0); col < w.width; col++ {
			p := Point{Row: row, Col: col}
			w.next[w.Index(p)] = w.NextState(p)
		}
	}
	w.cells, w.next = w.next, w.cells
	w.generation++
	w.version++
}

// ToggleCell flips the cell at (row, col) after wrapping the coordinates.
func (w *World) ToggleCell(row, col uint32) {
	w.cells[w.Index(w.Resolve(row, col))].Toggle()
	w.version++
}

// Get returns the cell at (row, col) after wrapping the coordinates.
func (w *World) Get(row, col uint32) Cell {
	return w.cells[w.Index(w.Resolve(row, col))]
}

// Set stores c at (row, col) after wrapping the coordinates.
func (w *World) Set(row, col uint32, c Cell) {
	w.cells[w.Index(w.Resolve(row, col))] = c
	w.version++
}

// Reset kills every cell and rewinds the generation counter.
func (w *World) Reset() {
	clear(w.cells)
	w.generation = 0
	w.version++
}

// Population returns the number of live cells.
func (w *World) Population() int {
	count := 0
	for _, c := range w.cells {
		count += int(c)
	}
	return count
}
