package sand

import (
	"errors"
	"fmt"
	"strconv"
)

// Config controls the canvas and the initial tunables of a sand world.
type Config struct {
	// Width and Height are the canvas size in pixels.
	Width  int
	Height int

	CellSize    int
	MinCellSize int
	// MaxCellSize caps cell size increments. Zero leaves them unbounded.
	MaxCellSize int

	BrushSize    int
	MinBrushSize int

	Density float64
	HueStep float64
	// HueStart is the initial hue cursor. It starts at 1 so the first
	// painted cells never truncate to the Empty sentinel.
	HueStart float64

	Paused bool
	Seed   int64

	DuneHeight    float64
	DuneAmplitude float64
	DuneScale     float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        800,
		CellSize:      5,
		MinCellSize:   3,
		BrushSize:     11,
		MinBrushSize:  3,
		Density:       0.05,
		HueStep:       0.05,
		HueStart:      1,
		Seed:          1337,
		DuneHeight:    0.3,
		DuneAmplitude: 0.15,
		DuneScale:     0.03,
	}
}

// Validate reports configurations that cannot produce a grid.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas %dx%d must be positive", c.Width, c.Height)
	}
	if c.MinCellSize <= 0 {
		return errors.New("minimum cell size must be positive")
	}
	if c.CellSize < c.MinCellSize {
		return fmt.Errorf("cell size %d below minimum %d", c.CellSize, c.MinCellSize)
	}
	if c.MaxCellSize > 0 && c.CellSize > c.MaxCellSize {
		return fmt.Errorf("cell size %d above maximum %d", c.CellSize, c.MaxCellSize)
	}
	if c.MinBrushSize <= 0 {
		return errors.New("minimum brush size must be positive")
	}
	if c.HueStep <= 0 {
		return errors.New("hue step must be positive")
	}
	return nil
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
	if v, ok := cfg["cell_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MinCellSize = parsed
		}
	}
	if v, ok := cfg["cell_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxCellSize = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if c.CellSize < c.MinCellSize {
		c.CellSize = c.MinCellSize
	}
	if c.MaxCellSize > 0 && c.CellSize > c.MaxCellSize {
		c.CellSize = c.MaxCellSize
	}
	if v, ok := cfg["brush_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MinBrushSize = parsed
		}
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.BrushSize = parsed
		}
	}
	if c.BrushSize < c.MinBrushSize {
		c.BrushSize = c.MinBrushSize
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Density = clamp01(parsed)
		}
	}
	if v, ok := cfg["hue_step"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.HueStep = parsed
		}
	}
	if v, ok := cfg["hue_start"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 1 {
			c.HueStart = parsed
		}
	}
	if v, ok := cfg["paused"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Paused = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["dune_height"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.DuneHeight = clamp01(parsed)
		}
	}
	if v, ok := cfg["dune_amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.DuneAmplitude = clamp01(parsed)
		}
	}
	if v, ok := cfg["dune_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.DuneScale = parsed
		}
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
