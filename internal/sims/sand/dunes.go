package sand

import (
	"math"

	"github.com/aquilax/go-perlin"

	"sandbox/internal/core"
)

const (
	duneAlpha  = 2.0
	duneBeta   = 2.0
	duneOctave = 3
)

// Dunes pours a perlin height field of sand into the empty cells of the grid.
// Each call uses a new noise seed. It returns the number of cells filled.
func (w *World) Dunes() int {
	seed := w.cfg.Seed + w.dunes
	w.dunes++
	return fillDunes(w.grid, &w.params, w.cfg, seed)
}

func fillDunes(g *core.Grid, p *Params, cfg Config, seed int64) int {
	noise := perlin.NewPerlin(duneAlpha, duneBeta, duneOctave, seed)
	base := cfg.DuneHeight * float64(g.H)
	amp := cfg.DuneAmplitude * float64(g.H)
	filled := 0
	for x := 0; x < g.W; x++ {
		height := int(math.Round(base + amp*noise.Noise1D(float64(x)*cfg.DuneScale)))
		if height <= 0 {
			continue
		}
		if height > g.H {
			height = g.H
		}
		for y := g.H - 1; y >= g.H-height; y-- {
			idx := g.Index(x, y)
			if g.Cells()[idx] != core.Empty {
				continue
			}
			g.Cells()[idx] = p.NextHue()
			filled++
		}
	}
	return filled
}
