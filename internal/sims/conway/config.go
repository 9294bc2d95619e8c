package conway

import (
	"fmt"
	"strconv"

	"canvas-toys/pkg/life"
)

// Config controls the board size, the starting pattern and random reseeding.
type Config struct {
	Width  int
	Height int

	// Pattern is the seed restored by Reset(0).
	Pattern []life.Cell
	// Density is the live-cell probability used when reseeding at random.
	Density float64
}

// DefaultConfig returns the 125x62 demo board with its hardcoded pattern.
func DefaultConfig() Config {
	b := life.DefaultBounds()
	return Config{
		Width:   b.W,
		Height:  b.H,
		Pattern: life.DefaultPattern(),
		Density: 0.25,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unlike size hints, a pattern that fails to parse is an error.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		cells, err := life.ParsePattern(v)
		if err != nil {
			return c, fmt.Errorf("pattern: %w", err)
		}
		c.Pattern = cells
	}
	return c, nil
}
