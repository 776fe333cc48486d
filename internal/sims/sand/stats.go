package sand

import "sandbox/internal/core"

// Stats summarizes the particles resting on a grid.
type Stats struct {
	Particles int
	// Heights holds, per column, the distance from the floor to the topmost
	// particle.
	Heights   []int
	MaxHeight int
	// Spread counts columns holding at least one particle.
	Spread int
}

// Measure computes Stats for g.
func Measure(g *core.Grid) Stats {
	s := Stats{Heights: make([]int, g.W)}
	cells := g.Cells()
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			if cells[y*g.W+x] == core.Empty {
				continue
			}
			if s.Heights[x] == 0 {
				s.Heights[x] = g.H - y
			}
			s.Particles++
		}
		if s.Heights[x] > 0 {
			s.Spread++
		}
		if s.Heights[x] > s.MaxHeight {
			s.MaxHeight = s.Heights[x]
		}
	}
	return s
}
