package sand

import "sandbox/internal/core"

// PourResult reports how a pile formed under a fixed pouring brush.
type PourResult struct {
	Stats
	Ticks int
	// Slope is the pile height divided by its half-width, a rough measure
	// of the angle of repose.
	Slope float64
}

// Pour runs a headless world that paints at the top center of the canvas for
// pourTicks frames, then lets the pile settle for settleTicks more.
func Pour(cfg Config, pourTicks, settleTicks int) (PourResult, error) {
	cfg.Paused = false
	w, err := New(cfg)
	if err != nil {
		return PourResult{}, err
	}
	cellSize := w.GridCellSize()
	ptr := core.Pointer{
		X:      cfg.Width / 2,
		Y:      (cfg.BrushSize/2)*cellSize + cellSize/2,
		Button: core.ButtonPrimary,
		Moved:  true,
	}
	for i := 0; i < pourTicks; i++ {
		w.Frame(core.Input{Pointer: ptr})
	}
	for i := 0; i < settleTicks; i++ {
		w.Frame(core.Input{})
	}
	res := PourResult{Stats: Measure(w.Grid()), Ticks: int(w.Ticks())}
	if res.Spread > 1 {
		res.Slope = float64(res.MaxHeight) / (float64(res.Spread) / 2)
	}
	return res, nil
}
