package life

import "unsafe"

// View is a read-only window onto a world's current generation. It stays
// valid until the world is next mutated; after that Valid reports false and
// the underlying memory may hold a different generation.
type View struct {
	world   *World
	version uint64
	cells   []Cell
}

// View borrows the current generation without copying it.
func (w *World) View() View {
	return View{world: w, version: w.version, cells: w.cells}
}

// Valid reports whether the world is unchanged since the view was taken.
func (v View) Valid() bool {
	return v.world != nil && v.world.version == v.version
}

// Len returns the number of cells in the view.
func (v View) Len() int { return len(v.cells) }

// At returns the cell at linear index i.
func (v View) At(i int) Cell { return v.cells[i] }

// Cells returns the viewed buffer. Callers must not write to it.
func (v View) Cells() []Cell { return v.cells }

// Bytes reinterprets the viewed buffer as one byte per cell, row-major,
// without copying.
func (v View) Bytes() []byte {
	if len(v.cells) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(v.cells))), len(v.cells))
}
