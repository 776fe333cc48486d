package sand

import "sandbox/internal/core"

// Painter stamps and erases cells under the brush footprint.
type Painter struct {
	rng core.Rand
}

// NewPainter returns a Painter gating paint samples with rng.
func NewPainter(rng core.Rand) *Painter {
	return &Painter{rng: rng}
}

// Anchor maps a canvas pixel to the grid cell under it.
func Anchor(px, py, cellSize int) (int, int) {
	return floorDiv(px, cellSize), floorDiv(py, cellSize)
}

// Apply edits g under the pointer footprint and returns the number of cells
// changed. cellSize is the size g was allocated with.
//
// The footprint spans offsets [-brush/2, brush/2) on both axes. Erasing clears
// the whole footprint; painting fills empty cells that pass the density gate,
// advancing the hue cursor once per painted cell.
func (pt *Painter) Apply(g *core.Grid, p *Params, ptr core.Pointer, cellSize int) int {
	if ptr.Button == core.ButtonNone || cellSize <= 0 {
		return 0
	}
	ax, ay := Anchor(ptr.X, ptr.Y, cellSize)
	half := p.BrushSize / 2
	changed := 0
	for dy := -half; dy < half; dy++ {
		y := ay + dy
		if y < 0 || y >= g.H {
			continue
		}
		for dx := -half; dx < half; dx++ {
			x := ax + dx
			if x < 0 || x >= g.W {
				continue
			}
			idx := g.Index(x, y)
			cells := g.Cells()
			switch ptr.Button {
			case core.ButtonSecondary:
				if cells[idx] != core.Empty {
					cells[idx] = core.Empty
					changed++
				}
			case core.ButtonPrimary:
				if pt.rng.Float64() > p.Density {
					continue
				}
				if cells[idx] != core.Empty {
					continue
				}
				cells[idx] = p.NextHue()
				changed++
			}
		}
	}
	return changed
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
