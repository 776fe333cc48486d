package sand

import "sandbox/internal/core"

const (
	brushStep   = 2
	cellStep    = 1
	densityStep = 0.05
)

// Controller maps wheel notches to parameter changes.
type Controller struct{}

// Scroll applies one notch in direction dir with modifier mod held and reports
// whether the grid must be reallocated at p.CellSize.
//
// A cell size change is always recorded, but only a size the grid can be
// allocated at asks for reallocation. Decrementing below the minimum therefore
// leaves the stored size out of step with the live grid until a later notch
// brings it back in range.
func (Controller) Scroll(p *Params, mod core.Modifier, dir core.ScrollDirection) bool {
	if dir == core.ScrollNone {
		return false
	}
	realloc := false
	switch mod {
	case core.ModPrimary:
		if dir == core.ScrollAway {
			if p.MaxCellSize > 0 && p.CellSize+cellStep > p.MaxCellSize {
				break
			}
			p.CellSize += cellStep
		} else {
			p.CellSize -= cellStep
		}
		realloc = p.CellSizeAllocatable(p.CellSize)
	case core.ModSecondary:
		p.Density += float64(dir) * densityStep
	default:
		p.BrushSize += int(dir) * brushStep
	}
	p.Clamp()
	return realloc
}
