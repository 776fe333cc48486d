package sand

import "sandbox/internal/core"

// Engine applies the gravity rule to a grid.
type Engine struct {
	rng core.Rand
}

// NewEngine returns an Engine drawing lateral directions from rng.
func NewEngine(rng core.Rand) *Engine {
	return &Engine{rng: rng}
}

// Tick advances g by one step when p.Running is set and reports whether it did.
func (e *Engine) Tick(g *core.Grid, p *Params) bool {
	if !p.Running {
		return false
	}
	e.Step(g)
	return true
}

// Step advances g by exactly one tick.
//
// Rows are visited bottom to top so a particle that drops into row y+1 is not
// seen again until the next tick; every particle falls at most one row.
func (e *Engine) Step(g *core.Grid) {
	w, h := g.W, g.H
	cells := g.Cells()
	for y := h - 2; y >= 0; y-- {
		row := y * w
		below := row + w
		for x := 0; x < w; x++ {
			c := cells[row+x]
			if c == core.Empty {
				continue
			}
			if cells[below+x] == core.Empty {
				cells[below+x] = c
				cells[row+x] = core.Empty
				continue
			}
			dir := -1
			if e.rng.Bool() {
				dir = 1
			}
			if nx := x + dir; nx >= 0 && nx < w && cells[below+nx] == core.Empty {
				cells[below+nx] = c
				cells[row+x] = core.Empty
				continue
			}
			if nx := x - dir; nx >= 0 && nx < w && cells[below+nx] == core.Empty {
				cells[below+nx] = c
				cells[row+x] = core.Empty
			}
		}
	}
}
