package flood

import (
	"strconv"

	"flood-ca/internal/terrain"
)

// Config controls the flood world.
type Config struct {
	Width  int
	Height int

	Seed int64

	// StartRow and StartCol pick the source cell. A negative value in either
	// starts from the highest cell of the generated terrain.
	StartRow int
	StartCol int

	// RandomStart picks a seed-derived source cell on each Reset.
	RandomStart bool

	Workers int

	Terrain terrain.Config
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    128,
		Height:   96,
		Seed:     1337,
		StartRow: -1,
		StartCol: -1,
		Workers:  1,
		Terrain:  terrain.DefaultConfig(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
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
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["row"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.StartRow = parsed
		}
	}
	if v, ok := cfg["col"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.StartCol = parsed
		}
	}
	if v, ok := cfg["random_start"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.RandomStart = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Terrain.Octaves = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Terrain.Scale = parsed
		}
	}
	if v, ok := cfg["amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Terrain.Amplitude = parsed
		}
	}
	c.Terrain.Width = c.Width
	c.Terrain.Height = c.Height
	c.Terrain.Seed = c.Seed
	return c
}
