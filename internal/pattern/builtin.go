package pattern

import "sort"

var builtins = map[string][]string{
	"block": {
		"##",
		"##",
	},
	"blinker": {
		"###",
	},
	"glider": {
		".#.",
		"..#",
		"###",
	},
	"r-pentomino": {
		".##",
		"##.",
		".#.",
	},
	"lwss": {
		".#..#",
		"#....",
		"#...#",
		"####.",
	},
}

// Builtin returns a fresh copy of the named built-in pattern.
func Builtin(name string) (*Pattern, bool) {
	rows, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return &Pattern{Name: name, Rows: append([]string(nil), rows...)}, true
}

// BuiltinNames lists the built-in patterns in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
