//go:build ebiten

package app

import (
	"image/color"

	"sandbox/internal/core"
	"sandbox/internal/render"
	"sandbox/internal/sims/sand"
	"sandbox/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sand world to the ebiten.Game interface.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	lastX, lastY int
}

// New constructs a Game for the provided world with a control panel of
// hudWidth pixels.
func New(world *sand.World, hudWidth int) *Game {
	return &Game{
		world:   world,
		painter: render.NewGridPainter(),
		overlay: ui.NewOverlay(),
		hud:     ui.NewHUD(world, hudWidth),
	}
}

// Update gathers one frame of input and advances the world.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.overlay.Toggle()
	}

	canvasW, _ := g.world.Canvas()
	overHUD := g.hud.Update(canvasW)

	in := core.Input{
		Toggle:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		StepOnce: inpututil.IsKeyJustPressed(ebiten.KeyN),
		Clear:    inpututil.IsKeyJustPressed(ebiten.KeyR),
		Dunes:    inpututil.IsKeyJustPressed(ebiten.KeyT),
		Modifier: modifier(),
		Scroll:   scroll(),
	}
	if !overHUD {
		in.Pointer = g.pointer()
	}
	g.world.Frame(in)
	g.overlay.Update(g.world.StatusLine())
	return nil
}

// Draw renders the grid, the overlay, and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	cellSize := g.world.GridCellSize()
	g.painter.Blit(screen, g.world.Grid(), cellSize)

	canvasW, canvasH := g.world.Canvas()
	mx, my := ebiten.CursorPosition()
	ax, ay := sand.Anchor(mx, my, cellSize)
	onCanvas := mx >= 0 && my >= 0 && mx < canvasW && my < canvasH
	g.overlay.Draw(screen, ax, ay, g.world.Params().BrushSize, cellSize, onCanvas)
	g.hud.Draw(screen, canvasW, canvasH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.world.Canvas()
	return w + g.HUDWidth(), h
}

// HUDWidth is the width of the control panel, zero when hidden.
func (g *Game) HUDWidth() int {
	if g.hud == nil {
		return 0
	}
	return g.hud.Width()
}

func (g *Game) pointer() core.Pointer {
	x, y := ebiten.CursorPosition()
	p := core.Pointer{X: x, Y: y}
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		p.Button = core.ButtonSecondary
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		p.Button = core.ButtonPrimary
	}
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	p.Moved = x != g.lastX || y != g.lastY || justPressed
	g.lastX, g.lastY = x, y
	return p
}

func modifier() core.Modifier {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyControl):
		return core.ModPrimary
	case ebiten.IsKeyPressed(ebiten.KeyAlt):
		return core.ModSecondary
	default:
		return core.ModNone
	}
}

func scroll() core.ScrollDirection {
	_, dy := ebiten.Wheel()
	switch {
	case dy > 0:
		return core.ScrollAway
	case dy < 0:
		return core.ScrollToward
	default:
		return core.ScrollNone
	}
}
