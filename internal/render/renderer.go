//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"sandbox/internal/core"
)

// GridPainter uploads hue-tagged cells into an image and draws it scaled so
// each cell covers cellSize x cellSize pixels.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter returns a painter that sizes itself on first use.
func NewGridPainter() *GridPainter {
	return &GridPainter{}
}

// Blit draws g onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, cellSize int) {
	if g.W != gp.w || g.H != gp.h || gp.img == nil {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.w, gp.h = g.W, g.H
		gp.img = ebiten.NewImage(g.W, g.H)
		gp.buf = make([]byte, 4*g.W*g.H)
	}
	FillHueRGBA(gp.buf, g.Cells(), HuePalette())
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
