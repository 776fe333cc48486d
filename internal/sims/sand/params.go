package sand

import "sandbox/internal/core"

// Params is the mutable state shared by the controllers. The Controller is the
// only writer of the tunables; the Painter advances the hue cursor.
type Params struct {
	CellSize  int
	BrushSize int
	Density   float64
	Running   bool
	// Hue grows for the whole session and never wraps; the palette wraps.
	Hue float64

	HueStep      float64
	MinCellSize  int
	MaxCellSize  int
	MinBrushSize int
}

// NewParams derives the initial parameters from cfg.
func NewParams(cfg Config) Params {
	p := Params{
		CellSize:     cfg.CellSize,
		BrushSize:    cfg.BrushSize,
		Density:      clamp01(cfg.Density),
		Running:      !cfg.Paused,
		Hue:          cfg.HueStart,
		HueStep:      cfg.HueStep,
		MinCellSize:  cfg.MinCellSize,
		MaxCellSize:  cfg.MaxCellSize,
		MinBrushSize: cfg.MinBrushSize,
	}
	p.Clamp()
	return p
}

// Clamp forces brush size and density back into range.
func (p *Params) Clamp() {
	if p.BrushSize < p.MinBrushSize {
		p.BrushSize = p.MinBrushSize
	}
	p.Density = clamp01(p.Density)
}

// NextHue advances the hue cursor by one step and returns the tag for the
// newly painted cell.
func (p *Params) NextHue() core.Cell {
	p.Hue += p.HueStep
	return core.Cell(p.Hue)
}

// CellSizeAllocatable reports whether size may back a grid.
func (p *Params) CellSizeAllocatable(size int) bool {
	if size < p.MinCellSize {
		return false
	}
	if p.MaxCellSize > 0 && size > p.MaxCellSize {
		return false
	}
	return true
}
