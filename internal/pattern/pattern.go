// Package pattern describes seed patterns that can be stamped onto a world.
package pattern

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"torus-life/pkg/sims/life"
)

// ErrEmpty is returned for patterns without any rows.
var ErrEmpty = errors.New("pattern has no rows")

// Offset positions a pattern's top-left corner on the grid.
type Offset struct {
	Row uint32 `yaml:"row"`
	Col uint32 `yaml:"col"`
}

// Pattern is a rectangular stamp of live and dead cells. Rows may differ in
// length; missing cells are dead.
type Pattern struct {
	Name   string   `yaml:"name"`
	Offset Offset   `yaml:"offset"`
	Rows   []string `yaml:"rows"`
}

// Parse decodes a YAML pattern document and validates it.
func Parse(data []byte) (*Pattern, error) {
	var p Pattern
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode pattern: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads a YAML pattern from path.
func Load(path string) (*Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load pattern %q: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load pattern %q: %w", path, err)
	}
	if p.Name == "" {
		p.Name = path
	}
	return p, nil
}

// Resolve returns the built-in pattern called name, or loads name as a file.
func Resolve(name string) (*Pattern, error) {
	if p, ok := Builtin(name); ok {
		return p, nil
	}
	return Load(name)
}

// Validate checks that every rune in the pattern is a known cell symbol.
func (p *Pattern) Validate() error {
	if len(p.Rows) == 0 {
		return ErrEmpty
	}
	for r, row := range p.Rows {
		for c, ch := range []rune(row) {
			if _, err := cellFor(ch); err != nil {
				return fmt.Errorf("row %d col %d: %w", r, c, err)
			}
		}
	}
	return nil
}

// Size returns the bounding box of the pattern.
func (p *Pattern) Size() (rows, cols int) {
	for _, row := range p.Rows {
		if n := len([]rune(row)); n > cols {
			cols = n
		}
	}
	return len(p.Rows), cols
}

// Alive returns the number of live cells in the pattern.
func (p *Pattern) Alive() int {
	n := 0
	for _, row := range p.Rows {
		for _, ch := range row {
			if c, _ := cellFor(ch); c == life.Alive {
				n++
			}
		}
	}
	return n
}

// Apply stamps the pattern onto w at its offset. Both live and dead cells of
// the bounding box are written, and placement wraps around the grid edges.
func (p *Pattern) Apply(w *life.World) error {
	for r, row := range p.Rows {
		for c, ch := range []rune(row) {
			cell, err := cellFor(ch)
			if err != nil {
				return fmt.Errorf("apply %s: row %d col %d: %w", p.Name, r, c, err)
			}
			w.Set(p.Offset.Row+uint32(r), p.Offset.Col+uint32(c), cell)
		}
	}
	return nil
}

// Centered returns a copy of p whose offset places it in the middle of a
// width x height grid.
func (p *Pattern) Centered(width, height uint32) *Pattern {
	rows, cols := p.Size()
	out := *p
	out.Rows = append([]string(nil), p.Rows...)
	out.Offset = Offset{
		Row: center(height, uint32(rows)),
		Col: center(width, uint32(cols)),
	}
	return &out
}

func center(total, span uint32) uint32 {
	if span >= total {
		return 0
	}
	return (total - span) / 2
}

func cellFor(ch rune) (life.Cell, error) {
	switch ch {
	case '#', 'O', '*', '1':
		return life.Alive, nil
	case '.', '0', ' ', '_':
		return life.Dead, nil
	}
	return life.Dead, fmt.Errorf("unknown cell symbol %q", ch)
}

// String renders the pattern using '#' and '.'.
func (p *Pattern) String() string {
	var b strings.Builder
	for i, row := range p.Rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, ch := range row {
			if c, _ := cellFor(ch); c == life.Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
