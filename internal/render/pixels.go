package render

import (
	"image/color"

	"github.com/crazy3lf/colorconv"

	"sandbox/internal/core"
)

// HueRange is the number of distinct hues on the color wheel. Hue tags wrap
// around it when rendered.
const HueRange = 360

var huePalette = buildHuePalette()

// HuePalette exposes the fully saturated, full brightness color wheel.
func HuePalette() []color.RGBA {
	return huePalette
}

// HueColor maps a hue tag to its display color.
func HueColor(tag core.Cell) color.RGBA {
	return huePalette[int(tag%HueRange)]
}

func buildHuePalette() []color.RGBA {
	palette := make([]color.RGBA, HueRange)
	for i := range palette {
		r, g, b, err := colorconv.HSVToRGB(float64(i), 1, 1)
		if err != nil {
			continue
		}
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return palette
}

// FillHueRGBA converts cell values into RGBA pixels. Empty cells are written
// as transparent black so the background shows through.
func FillHueRGBA(buf []byte, cells []core.Cell, palette []color.RGBA) {
	n := len(palette)
	for i, c := range cells {
		base := i * 4
		if c == core.Empty || n == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		col := palette[int(c)%n]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
