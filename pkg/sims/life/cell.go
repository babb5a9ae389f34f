package life

// Cell is the state of one grid position. The numeric values are part of the
// buffer contract with renderers and are summed directly when counting
// neighbours, so they must stay 0 and 1.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Toggle flips the cell between Dead and Alive.
func (c *Cell) Toggle() {
	if *c == Alive {
		*c = Dead
		return
	}
	*c = Alive
}

// IsAlive reports whether c is Alive.
func (c Cell) IsAlive() bool { return c == Alive }

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}
