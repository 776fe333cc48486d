package sand

import (
	"testing"

	"sandbox/internal/core"
)

func paintParams(brush int, density float64) Params {
	cfg := DefaultConfig()
	cfg.BrushSize = brush
	cfg.Density = density
	return NewParams(cfg)
}

func TestAnchorFloorsPixels(t *testing.T) {
	cases := []struct {
		px, py, size int
		wx, wy       int
	}{
		{52, 52, 5, 10, 10},
		{54, 50, 5, 10, 10},
		{55, 49, 5, 11, 9},
		{-1, 0, 5, -1, 0},
		{-5, -6, 5, -1, -2},
	}
	for _, tc := range cases {
		x, y := Anchor(tc.px, tc.py, tc.size)
		if x != tc.wx || y != tc.wy {
			t.Fatalf("Anchor(%d,%d,%d) = (%d,%d), expected (%d,%d)", tc.px, tc.py, tc.size, x, y, tc.wx, tc.wy)
		}
	}
}

func TestPaintFullDensityFillsFootprint(t *testing.T) {
	g, err := core.Allocate(800, 800, 5)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	p := paintParams(11, 1.0)
	startHue := p.Hue
	pt := NewPainter(core.NewRNG(7))

	changed := pt.Apply(g, &p, core.Pointer{X: 52, Y: 52, Button: core.ButtonPrimary}, 5)

	// Offsets span [-5, 5) around anchor (10,10).
	if changed != 100 {
		t.Fatalf("expected 100 painted cells, got %d", changed)
	}
	var last core.Cell
	for y := 5; y < 15; y++ {
		for x := 5; x < 15; x++ {
			v, _ := g.Get(x, y)
			if v == core.Empty {
				t.Fatalf("footprint cell (%d,%d) left empty", x, y)
			}
			if v < last {
				t.Fatalf("hue tags decreased at (%d,%d): %d after %d", x, y, v, last)
			}
			last = v
		}
	}
	for _, c := range [][2]int{{4, 10}, {15, 10}, {10, 4}, {10, 15}} {
		if v, _ := g.Get(c[0], c[1]); v != core.Empty {
			t.Fatalf("cell %v outside the footprint was painted", c)
		}
	}
	if want := startHue + 100*p.HueStep; p.Hue < want-1e-9 || p.Hue > want+1e-9 {
		t.Fatalf("expected hue cursor %.3f, got %.3f", want, p.Hue)
	}
}

func TestPaintUnitHueStepGivesStrictlyIncreasingTags(t *testing.T) {
	g := core.NewGrid(40, 40)
	p := paintParams(11, 1.0)
	p.HueStep = 1
	pt := NewPainter(core.NewRNG(7))

	pt.Apply(g, &p, core.Pointer{X: 20, Y: 20, Button: core.ButtonPrimary}, 1)

	var last core.Cell
	for y := 15; y < 25; y++ {
		for x := 15; x < 25; x++ {
			v, _ := g.Get(x, y)
			if v <= last {
				t.Fatalf("expected strictly increasing tags, (%d,%d)=%d after %d", x, y, v, last)
			}
			last = v
		}
	}
}

func TestPaintDensityGate(t *testing.T) {
	g := core.NewGrid(10, 10)
	p := paintParams(3, 0.5)
	// Brush 3 covers offsets [-1, 1): (4,4) (5,4) (4,5) (5,5).
	pt := NewPainter(&scriptedRand{floats: []float64{0.2, 0.9, 0.5, 0.51}})

	changed := pt.Apply(g, &p, core.Pointer{X: 5, Y: 5, Button: core.ButtonPrimary}, 1)

	if changed != 2 {
		t.Fatalf("expected 2 painted cells, got %d", changed)
	}
	want := map[[2]int]bool{{4, 4}: true, {4, 5}: true}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			v, _ := g.Get(x, y)
			if want[[2]int{x, y}] != (v != core.Empty) {
				t.Fatalf("cell (%d,%d)=%d, painted expected %v", x, y, v, want[[2]int{x, y}])
			}
		}
	}
}

func TestPaintDoesNotOverwrite(t *testing.T) {
	g := core.NewGrid(10, 10)
	for i := range g.Cells() {
		g.Cells()[i] = 7
	}
	p := paintParams(5, 1.0)
	hue := p.Hue
	pt := NewPainter(core.NewRNG(3))

	if changed := pt.Apply(g, &p, core.Pointer{X: 5, Y: 5, Button: core.ButtonPrimary}, 1); changed != 0 {
		t.Fatalf("expected no changes, got %d", changed)
	}
	for i, c := range g.Cells() {
		if c != 7 {
			t.Fatalf("cell %d overwritten with %d", i, c)
		}
	}
	if p.Hue != hue {
		t.Fatalf("hue cursor advanced from %f to %f", hue, p.Hue)
	}
}

func TestEraseIgnoresDensity(t *testing.T) {
	g := core.NewGrid(12, 12)
	for i := range g.Cells() {
		g.Cells()[i] = 3
	}
	p := paintParams(5, 0)
	pt := NewPainter(&scriptedRand{floats: []float64{0.99, 0.99, 0.99}})

	pt.Apply(g, &p, core.Pointer{X: 6, Y: 6, Button: core.ButtonSecondary}, 1)

	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			v, _ := g.Get(x, y)
			inside := x >= 4 && x < 8 && y >= 4 && y < 8
			if inside && v != core.Empty {
				t.Fatalf("footprint cell (%d,%d) not erased", x, y)
			}
			if !inside && v != 3 {
				t.Fatalf("cell (%d,%d) outside footprint changed to %d", x, y, v)
			}
		}
	}
}

func TestPaintClipsAtEdges(t *testing.T) {
	g := core.NewGrid(6, 6)
	p := paintParams(11, 1.0)
	pt := NewPainter(core.NewRNG(1))

	changed := pt.Apply(g, &p, core.Pointer{X: 0, Y: 0, Button: core.ButtonPrimary}, 1)

	// Offsets [-5, 5) from (0,0) reach cells 0..4 on each axis.
	if changed != 25 {
		t.Fatalf("expected 25 in-bounds cells painted, got %d", changed)
	}
	if changed := pt.Apply(g, &p, core.Pointer{X: -400, Y: 900, Button: core.ButtonSecondary}, 1); changed != 0 {
		t.Fatalf("expected far off-grid pointer to change nothing, got %d", changed)
	}
}

func TestPaintWithoutButtonIsNoop(t *testing.T) {
	g := core.NewGrid(6, 6)
	p := paintParams(5, 1.0)
	if changed := NewPainter(core.NewRNG(1)).Apply(g, &p, core.Pointer{X: 3, Y: 3}, 1); changed != 0 {
		t.Fatalf("expected no edits without a button, got %d", changed)
	}
}
