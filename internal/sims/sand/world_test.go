package sand

import (
	"strings"
	"testing"

	"sandbox/internal/core"
)

func newTestWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	w, err := New(cfg)
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	return w
}

func fill(g *core.Grid) {
	for i := range g.Cells() {
		g.Cells()[i] = 5
	}
}

func TestNewWorldAllocatesFromCanvas(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	if s := w.Size(); s.W != 160 || s.H != 160 {
		t.Fatalf("expected 160x160 grid, got %dx%d", s.W, s.H)
	}
	if w.GridCellSize() != 5 {
		t.Fatalf("expected grid cell size 5, got %d", w.GridCellSize())
	}
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellSize = 1
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for cell size below minimum")
	}
	cfg = DefaultConfig()
	cfg.Width = 0
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for empty canvas")
	}
}

func TestResizeClearsGrid(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	fill(w.Grid())

	w.Scroll(core.ModPrimary, core.ScrollAway)

	if w.Grid().Count() != 0 {
		t.Fatalf("expected empty grid after resize, got %d particles", w.Grid().Count())
	}
	if s := w.Size(); s.W != 133 || s.H != 133 {
		t.Fatalf("expected 133x133 grid at cell size 6, got %dx%d", s.W, s.H)
	}
	if w.GridCellSize() != 6 {
		t.Fatalf("expected grid cell size 6, got %d", w.GridCellSize())
	}
}

func TestRefusedShrinkKeepsGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellSize = cfg.MinCellSize
	w := newTestWorld(t, cfg)
	fill(w.Grid())
	count := w.Grid().Count()

	w.Scroll(core.ModPrimary, core.ScrollToward)

	if w.Params().CellSize != cfg.MinCellSize-1 {
		t.Fatalf("expected stored cell size %d, got %d", cfg.MinCellSize-1, w.Params().CellSize)
	}
	if w.GridCellSize() != cfg.MinCellSize {
		t.Fatalf("expected grid to keep cell size %d, got %d", cfg.MinCellSize, w.GridCellSize())
	}
	if w.Grid().Count() != count {
		t.Fatal("refused shrink must not clear the grid")
	}
}

func TestFramePaintsWhilePaused(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paused = true
	cfg.Density = 1
	w := newTestWorld(t, cfg)

	w.Frame(core.Input{Pointer: core.Pointer{X: 400, Y: 400, Button: core.ButtonPrimary, Moved: true}})

	if got := w.Grid().Count(); got != 100 {
		t.Fatalf("expected 100 painted cells while paused, got %d", got)
	}
	snapshot := append([]core.Cell(nil), w.Grid().Cells()...)
	w.Frame(core.Input{})
	for i, c := range w.Grid().Cells() {
		if c != snapshot[i] {
			t.Fatal("paused frame moved particles")
		}
	}
	if w.Ticks() != 0 {
		t.Fatalf("expected no ticks while paused, got %d", w.Ticks())
	}
}

func TestFrameToggleAndStepOnce(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	w.Grid().Set(3, 0, 9)

	w.Frame(core.Input{Toggle: true})
	if w.Params().Running {
		t.Fatal("expected toggle to pause the world")
	}
	if v, _ := w.Grid().Get(3, 0); v != 9 {
		t.Fatal("paused frame must not step")
	}

	w.Frame(core.Input{StepOnce: true})
	if v, _ := w.Grid().Get(3, 1); v != 9 {
		t.Fatal("expected single step to drop the particle one row")
	}

	w.Frame(core.Input{Toggle: true})
	if !w.Params().Running {
		t.Fatal("expected second toggle to resume")
	}
	if v, _ := w.Grid().Get(3, 2); v != 9 {
		t.Fatal("expected running frame to drop the particle again")
	}
	if w.Ticks() != 2 {
		t.Fatalf("expected 2 ticks, got %d", w.Ticks())
	}
}

func TestFramePaintsBeforeStepping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BrushSize = 3
	cfg.Density = 1
	w := newTestWorld(t, cfg)

	w.Frame(core.Input{Pointer: core.Pointer{X: 50, Y: 50, Button: core.ButtonPrimary, Moved: true}})

	// The 2x2 stamp at rows 9..10 has already fallen one row.
	for _, c := range [][2]int{{9, 10}, {10, 10}, {9, 11}, {10, 11}} {
		if v, _ := w.Grid().Get(c[0], c[1]); v == core.Empty {
			t.Fatalf("expected particle at %v after paint+tick", c)
		}
	}
	if v, _ := w.Grid().Get(9, 9); v != core.Empty {
		t.Fatal("expected top row of the stamp to have moved")
	}
}

func TestFrameIgnoresStillPointer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Density = 1
	w := newTestWorld(t, cfg)
	w.Frame(core.Input{Pointer: core.Pointer{X: 50, Y: 50, Button: core.ButtonPrimary}})
	if w.Grid().Count() != 0 {
		t.Fatal("expected no paint without pointer movement")
	}
}

func TestClearKeepsParams(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	fill(w.Grid())
	before := w.Params()
	w.Frame(core.Input{Clear: true})
	if w.Grid().Count() != 0 {
		t.Fatal("expected clear to empty the grid")
	}
	if w.Params() != before {
		t.Fatal("clear must not change parameters")
	}
}

func TestSetCanvasReallocates(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	fill(w.Grid())
	w.SetCanvas(100, 50)
	if s := w.Size(); s.W != 20 || s.H != 10 {
		t.Fatalf("expected 20x10 grid, got %dx%d", s.W, s.H)
	}
	if w.Grid().Count() != 0 {
		t.Fatal("expected canvas change to clear the grid")
	}
}

func TestStatusLine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paused = true
	w := newTestWorld(t, cfg)
	w.Grid().Set(0, 0, 1)

	got := w.StatusLine()
	want := "Brush size: 11\nCELL_SIZE: 5\nChance: 0.050\nSimulation running: No\nParticles: 1"
	if got != want {
		t.Fatalf("status line mismatch:\n%s\nexpected:\n%s", got, want)
	}
	w.Frame(core.Input{Toggle: true})
	if !strings.Contains(w.StatusLine(), "Simulation running: Yes") {
		t.Fatalf("expected running status, got %q", w.StatusLine())
	}
}

func TestParameterSetters(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())

	if !w.SetIntParameter("brush", 1) || w.Params().BrushSize != 3 {
		t.Fatalf("expected brush clamped to 3, got %d", w.Params().BrushSize)
	}
	if w.SetIntParameter("cell", 2) {
		t.Fatal("expected cell size below minimum to be rejected")
	}
	fill(w.Grid())
	if !w.SetIntParameter("cell", 8) || w.GridCellSize() != 8 || w.Grid().Count() != 0 {
		t.Fatal("expected cell size 8 to reallocate an empty grid")
	}
	if !w.SetFloatParameter("density", 1.5) || w.Params().Density != 1 {
		t.Fatalf("expected density clamped to 1, got %f", w.Params().Density)
	}
	if w.SetFloatParameter("brush", 1) || w.SetIntParameter("density", 1) {
		t.Fatal("expected mismatched keys to be rejected")
	}

	param, ok := w.Parameters().Lookup("density")
	if !ok || param.Value != "1.000" {
		t.Fatalf("expected density snapshot 1.000, got %+v", param)
	}
	if len(w.ParameterControls()) != 3 {
		t.Fatalf("expected 3 controls, got %d", len(w.ParameterControls()))
	}
}

func TestDunesFillAndSettle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 300, 200
	w := newTestWorld(t, cfg)

	filled := w.Dunes()
	if filled == 0 {
		t.Fatal("expected dunes to fill cells")
	}
	if w.Grid().Count() != filled {
		t.Fatalf("expected %d particles, got %d", filled, w.Grid().Count())
	}
	stats := Measure(w.Grid())
	if stats.Spread == 0 || stats.MaxHeight == 0 {
		t.Fatalf("unexpected dune stats %+v", stats)
	}
	for i := 0; i < 30; i++ {
		w.StepOnce()
	}
	if w.Grid().Count() != filled {
		t.Fatal("dunes must be conserved by the automaton")
	}
}

func TestMeasure(t *testing.T) {
	g := core.NewGrid(4, 5)
	g.Set(1, 4, 1)
	g.Set(1, 3, 1)
	g.Set(3, 4, 1)

	s := Measure(g)
	if s.Particles != 3 || s.MaxHeight != 2 || s.Spread != 2 {
		t.Fatalf("unexpected stats %+v", s)
	}
	want := []int{0, 2, 0, 1}
	for i, h := range want {
		if s.Heights[i] != h {
			t.Fatalf("column %d height %d, expected %d", i, s.Heights[i], h)
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":       "640",
		"cell":    "2",
		"brush":   "1",
		"density": "1.7",
		"paused":  "true",
		"seed":    "nope",
	})
	if c.Width != 640 || c.Height != 800 {
		t.Fatalf("unexpected canvas %dx%d", c.Width, c.Height)
	}
	if c.CellSize != c.MinCellSize {
		t.Fatalf("expected cell size raised to minimum, got %d", c.CellSize)
	}
	if c.BrushSize != c.MinBrushSize {
		t.Fatalf("expected brush raised to minimum, got %d", c.BrushSize)
	}
	if c.Density != 1 || !c.Paused || c.Seed != 1337 {
		t.Fatalf("unexpected config %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid config: %v", err)
	}
}
