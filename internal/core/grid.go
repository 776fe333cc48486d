package core

import (
	"errors"
	"fmt"
)

// Cell holds either Empty or a particle's hue tag.
type Cell uint32

// Empty marks a cell without a particle.
const Empty Cell = 0

// ErrInvalidCellSize is returned by Allocate for non-positive cell sizes.
var ErrInvalidCellSize = errors.New("cell size must be positive")

// Grid stores a 2D matrix of cells in row-major order.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Allocate returns an empty grid covering a canvas of canvasW x canvasH pixels
// at the given cell size: cols = canvasW/cellSize, rows = canvasH/cellSize.
func Allocate(canvasW, canvasH, cellSize int) (*Grid, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("allocate %dx%d: %w", canvasW, canvasH, ErrInvalidCellSize)
	}
	return NewGrid(canvasW/cellSize, canvasH/cellSize), nil
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) addresses a cell of the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Get returns the value at (x, y). The boolean is false when the coordinates
// fall outside the grid; callers treat that as a wall.
func (g *Grid) Get(x, y int) (Cell, bool) {
	if !g.In(x, y) {
		return Empty, false
	}
	return g.data[y*g.W+x], true
}

// Set writes v at (x, y). Writing outside the grid panics.
func (g *Grid) Set(x, y int, v Cell) {
	if !g.In(x, y) {
		panic(fmt.Sprintf("core: set (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
	g.data[y*g.W+x] = v
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.data {
		if c != Empty {
			n++
		}
	}
	return n
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Empty
	}
}
