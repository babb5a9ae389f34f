package life

import (
	"fmt"
	"strconv"
)

// Config holds parameters for the registered "life" sim.
type Config struct {
	Width  uint32
	Height uint32
	Fill   Fill
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight, Fill: FillPattern}
}

// FromMap populates a Config from a string map. Missing keys keep their
// defaults; present values must parse. Zero dimensions are passed through so
// that New rejects them.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return c, fmt.Errorf("parse width %q: %w", v, err)
		}
		c.Width = uint32(parsed)
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return c, fmt.Errorf("parse height %q: %w", v, err)
		}
		c.Height = uint32(parsed)
	}
	if v, ok := cfg["fill"]; ok {
		parsed, err := ParseFill(v)
		if err != nil {
			return c, err
		}
		c.Fill = parsed
	}
	return c, nil
}
