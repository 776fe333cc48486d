package sand

import (
	"fmt"

	"sandbox/internal/core"
)

// World owns the grid and runs the per-frame pipeline: edits, then physics.
type World struct {
	cfg    Config
	params Params

	canvasW, canvasH int
	grid             *core.Grid
	// gridCellSize is the cell size grid was allocated with. It differs from
	// params.CellSize after a refused reallocation.
	gridCellSize int

	engine     *Engine
	painter    *Painter
	controller Controller

	ticks int64
	dunes int64
}

// New returns a World seeded from cfg.Seed.
func New(cfg Config) (*World, error) {
	return NewWithRand(cfg, core.NewRNG(cfg.Seed))
}

// NewWithRand returns a World drawing all randomness from rng.
func NewWithRand(cfg Config, rng core.Rand) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sand: %w", err)
	}
	grid, err := Resize(cfg.Width, cfg.Height, cfg.CellSize)
	if err != nil {
		return nil, fmt.Errorf("sand: %w", err)
	}
	return &World{
		cfg:          cfg,
		params:       NewParams(cfg),
		canvasW:      cfg.Width,
		canvasH:      cfg.Height,
		grid:         grid,
		gridCellSize: cfg.CellSize,
		engine:       NewEngine(rng),
		painter:      NewPainter(rng),
	}, nil
}

// Resize returns a fresh empty grid covering the canvas at cellSize.
func Resize(canvasW, canvasH, cellSize int) (*core.Grid, error) {
	return core.Allocate(canvasW, canvasH, cellSize)
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the live grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Grid exposes the live grid for rendering.
func (w *World) Grid() *core.Grid { return w.grid }

// GridCellSize is the pixel size of one cell of the live grid.
func (w *World) GridCellSize() int { return w.gridCellSize }

// Canvas reports the canvas size in pixels.
func (w *World) Canvas() (int, int) { return w.canvasW, w.canvasH }

// Params returns a copy of the current parameters.
func (w *World) Params() Params { return w.params }

// Ticks counts the automaton steps taken so far.
func (w *World) Ticks() int64 { return w.ticks }

// Frame applies one frame of input: toggles and parameter changes first, then
// pointer edits, then one automaton tick if running or single-stepping.
func (w *World) Frame(in core.Input) {
	if in.Toggle {
		w.Toggle()
	}
	if in.Scroll != core.ScrollNone {
		w.Scroll(in.Modifier, in.Scroll)
	}
	if in.Clear {
		w.Clear()
	}
	if in.Dunes {
		w.Dunes()
	}
	if in.Pointer.Moved {
		w.Paint(in.Pointer)
	}
	if w.engine.Tick(w.grid, &w.params) {
		w.ticks++
	} else if in.StepOnce {
		w.StepOnce()
	}
}

// Toggle flips the running state. Painting is unaffected.
func (w *World) Toggle() {
	w.params.Running = !w.params.Running
}

// Paint applies the brush at ptr regardless of the running state.
func (w *World) Paint(ptr core.Pointer) int {
	return w.painter.Apply(w.grid, &w.params, ptr, w.gridCellSize)
}

// StepOnce advances the automaton one tick even while paused.
func (w *World) StepOnce() {
	w.engine.Step(w.grid)
	w.ticks++
}

// Scroll applies one wheel notch through the Controller.
func (w *World) Scroll(mod core.Modifier, dir core.ScrollDirection) {
	if w.controller.Scroll(&w.params, mod, dir) {
		w.reallocate()
	}
}

// Clear empties the grid without touching the parameters.
func (w *World) Clear() {
	w.grid.Clear()
}

// SetCanvas changes the canvas size and reallocates the grid.
func (w *World) SetCanvas(width, height int) {
	if width <= 0 || height <= 0 || (width == w.canvasW && height == w.canvasH) {
		return
	}
	w.canvasW, w.canvasH = width, height
	w.reallocate()
}

func (w *World) reallocate() {
	size := w.params.CellSize
	if !w.params.CellSizeAllocatable(size) {
		size = w.gridCellSize
	}
	grid, err := Resize(w.canvasW, w.canvasH, size)
	if err != nil {
		return
	}
	w.grid = grid
	w.gridCellSize = size
}
