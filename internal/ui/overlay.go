//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	statusX = 10
	statusY = 25
)

// Overlay draws the status text and the brush outline over the grid.
type Overlay struct {
	visible bool
	status  string
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Toggle flips overlay visibility.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Update stores the status text for the next Draw.
func (o *Overlay) Update(status string) {
	o.status = status
}

// Draw renders the status text and, when the cursor is over the canvas, the
// brush footprint anchored on cell (ax, ay).
func (o *Overlay) Draw(screen *ebiten.Image, ax, ay, brush, cellSize int, onCanvas bool) {
	if !o.visible {
		return
	}
	if onCanvas && cellSize > 0 {
		half := brush / 2
		side := float32(2 * half * cellSize)
		x := float32((ax - half) * cellSize)
		y := float32((ay - half) * cellSize)
		vector.StrokeRect(screen, x, y, side, side, 1, color.RGBA{R: 200, G: 200, B: 210, A: 140}, false)
	}
	text.Draw(screen, o.status, basicfont.Face7x13, statusX, statusY, color.White)
}
