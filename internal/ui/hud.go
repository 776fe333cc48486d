//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"sandbox/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Tunable is what the HUD needs from a simulation.
type Tunable interface {
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
	Parameters() core.ParameterSnapshot
}

// HUD renders a +/- control panel to the right of the canvas.
type HUD struct {
	src   Tunable
	width int
	panel *ebiten.Image

	controls     []hudControlState
	panelOffsetX int
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)

var (
	panelBG      = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textColor    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBG     = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonBGOff  = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonFGOff  = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	headerColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	defaultFloat = 0.05
)

// NewHUD constructs a HUD for src. A non-positive width disables it.
func NewHUD(src Tunable, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{src: src, width: width}
	for i, ctrl := range src.ParameterControls() {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls = append(h.controls, hudControlState{control: ctrl, value: "--", top: top, minusRect: minus, plusRect: plus})
	}
	return h
}

// Width is the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes displayed values and applies clicks. It reports whether
// the cursor is over the panel so the caller can suppress painting.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.refreshValues(h.src.Parameters())
	mx, my := ebiten.CursorPosition()
	if mx < panelOffsetX {
		return false
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px := mx - panelOffsetX
		for i := range h.controls {
			state := &h.controls[i]
			switch {
			case !state.hasValue:
			case pointInRect(px, my, state.minusRect):
				h.adjust(state, -1)
			case pointInRect(px, my, state.plusRect):
				h.adjust(state, 1)
			}
		}
	}
	return true
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBG)
	face := basicfont.Face7x13
	text.Draw(h.panel, "Sand Controls", face, panelPadding, panelPadding+headerBaseline, headerColor)
	for i := range h.controls {
		state := &h.controls[i]
		y := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, y, textColor)
		valueColor := textColor
		if !state.hasValue {
			valueColor = mutedColor
		}
		width := text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-width, y, valueColor)
		h.drawButton(state.minusRect, "-", state.hasValue && h.target(state, -1) != h.current(state))
		h.drawButton(state.plusRect, "+", state.hasValue && h.target(state, 1) != h.current(state))
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshValues(snapshot core.ParameterSnapshot) {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.value = param.Value
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = strconv.FormatFloat(parsed, 'f', 3, 64)
			state.hasValue = true
		}
	}
}

func (h *HUD) current(state *hudControlState) float64 {
	if state.control.Type == core.ParamTypeInt {
		return float64(state.intValue)
	}
	return state.floatValue
}

// target returns the value one step in direction, clamped to the bounds.
func (h *HUD) target(state *hudControlState, direction int) float64 {
	step := state.control.Step
	if step <= 0 {
		step = defaultFloat
		if state.control.Type == core.ParamTypeInt {
			step = 1
		}
	}
	v := h.current(state) + float64(direction)*step
	if state.control.HasMin && v < state.control.Min {
		v = state.control.Min
	}
	if state.control.HasMax && v > state.control.Max {
		v = state.control.Max
	}
	return v
}

func (h *HUD) adjust(state *hudControlState, direction int) {
	v := h.target(state, direction)
	if math.Abs(v-h.current(state)) < 1e-9 {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		h.src.SetIntParameter(state.control.Key, int(math.Round(v)))
	case core.ParamTypeFloat:
		h.src.SetFloatParameter(state.control.Key, v)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBG, textColor
	if !enabled {
		bg, fg = buttonBGOff, buttonFGOff
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
