package app

import (
	"flag"

	"sandbox/internal/sims/sand"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Cell    int
	CellMin int
	CellMax int
	Brush   int
	Density float64
	Paused  bool
	Seed    int64
	TPS     int
	HUD     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := sand.DefaultConfig()
	return &Config{
		Width:   d.Width,
		Height:  d.Height,
		Cell:    d.CellSize,
		CellMin: d.MinCellSize,
		CellMax: d.MaxCellSize,
		Brush:   d.BrushSize,
		Density: d.Density,
		Paused:  d.Paused,
		Seed:    d.Seed,
		TPS:     60,
		HUD:     220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.IntVar(&c.Cell, "cell", c.Cell, "initial cell size in pixels")
	fs.IntVar(&c.CellMin, "cell-min", c.CellMin, "smallest cell size the grid is allocated at")
	fs.IntVar(&c.CellMax, "cell-max", c.CellMax, "largest cell size (0 = unbounded)")
	fs.IntVar(&c.Brush, "brush", c.Brush, "initial brush size in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a brush cell is painted per stroke sample")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with the automaton paused")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random source")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.HUD, "hud", c.HUD, "control panel width in pixels (0 hides it)")
}

// Sand converts the flags into a simulation configuration.
func (c *Config) Sand() sand.Config {
	s := sand.DefaultConfig()
	s.Width = c.Width
	s.Height = c.Height
	s.CellSize = c.Cell
	s.MinCellSize = c.CellMin
	s.MaxCellSize = c.CellMax
	s.BrushSize = c.Brush
	s.Density = c.Density
	s.Paused = c.Paused
	s.Seed = c.Seed
	return s
}
