package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"torus-life/internal/config"
	"torus-life/internal/pattern"
	"torus-life/pkg/sims/life"
)

// Config represents the command-line parameters for the front ends. Values
// come from defaults, then LIFE_* environment variables, then flags.
type Config struct {
	Sim     string `env:"LIFE_SIM"`
	Width   uint   `env:"LIFE_WIDTH"`
	Height  uint   `env:"LIFE_HEIGHT"`
	Fill    string `env:"LIFE_FILL"`
	Pattern string `env:"LIFE_PATTERN"`
	Seed    int64  `env:"LIFE_SEED"`

	Scale  int  `env:"LIFE_SCALE"`
	TPS    int  `env:"LIFE_TPS"`
	Paused bool `env:"LIFE_PAUSED"`
	Grid   bool `env:"LIFE_GRID"`

	Generations int `env:"LIFE_GENERATIONS"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:    "life",
		Width:  life.DefaultWidth,
		Height: life.DefaultHeight,
		Fill:   string(life.FillPattern),
		Seed:   42,
		Scale:  8,
		TPS:    10,
		Grid:   true,
	}
}

// LoadEnv overlays LIFE_* environment variables onto c.
func (c *Config) LoadEnv() error {
	return config.ParseEnv(c)
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.UintVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.UintVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Fill, "fill", c.Fill, "initial fill: dead, pattern or random")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, fmt.Sprintf("YAML pattern file or built-in (%s) to stamp after filling", strings.Join(pattern.BuiltinNames(), ", ")))
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random fill")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.BoolVar(&c.Grid, "grid", c.Grid, "draw grid lines")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations (0 runs forever)")
}

// Validate rejects settings no front end can run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Width == 0 || c.Height == 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height))
	}
	if uint64(c.Width) > 1<<32-1 || uint64(c.Height) > 1<<32-1 {
		errs = append(errs, fmt.Errorf("grid size %dx%d exceeds 32 bits", c.Width, c.Height))
	}
	if _, err := life.ParseFill(c.Fill); err != nil {
		errs = append(errs, err)
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.Generations < 0 {
		errs = append(errs, fmt.Errorf("generations %d must not be negative", c.Generations))
	}
	return errors.Join(errs...)
}

// SimOptions renders the sim-specific settings as a factory config map.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":    fmt.Sprint(c.Width),
		"h":    fmt.Sprint(c.Height),
		"fill": c.Fill,
	}
}

// ParseConfig builds a Config from defaults, the environment and args.
func ParseConfig(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	if err := c.LoadEnv(); err != nil {
		return nil, err
	}
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}
