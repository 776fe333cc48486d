// Package term runs a sand world inside a terminal. Every character cell
// stands for a square block of canvas pixels, so the grid keeps the same
// cell-size semantics as the GUI.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"sandbox/internal/core"
	"sandbox/internal/render"
	"sandbox/internal/sims/sand"
)

const particleRune = '█'

// Session binds a world to a terminal screen.
type Session struct {
	screen tcell.Screen
	world  *sand.World
	// charPx is the number of canvas pixels covered by one character.
	charPx int
	status bool
}

// NewSession sizes the world's canvas to the screen.
func NewSession(screen tcell.Screen, world *sand.World, charPx int) *Session {
	if charPx <= 0 {
		charPx = 1
	}
	s := &Session{screen: screen, world: world, charPx: charPx, status: true}
	s.resize()
	return s
}

// Handle applies one terminal event and reports whether the session should
// keep running. Pointer events paint immediately; physics waits for Frame.
func (s *Session) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventResize:
		s.resize()
	}
	return true
}

func (s *Session) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	switch ev.Rune() {
	case 'q':
		return false
	case ' ':
		s.world.Toggle()
	case 'n':
		s.world.StepOnce()
	case 'r':
		s.world.Clear()
	case 't':
		s.world.Dunes()
	case 'h':
		s.status = !s.status
	}
	return true
}

func (s *Session) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	if dir := wheelDirection(buttons); dir != core.ScrollNone {
		s.world.Scroll(modifier(ev.Modifiers()), dir)
		return
	}
	x, y := ev.Position()
	ptr := core.Pointer{X: x*s.charPx + s.charPx/2, Y: y*s.charPx + s.charPx/2, Moved: true}
	switch {
	case buttons&tcell.Button2 != 0:
		ptr.Button = core.ButtonSecondary
	case buttons&tcell.Button1 != 0:
		ptr.Button = core.ButtonPrimary
	default:
		return
	}
	s.world.Paint(ptr)
}

func wheelDirection(buttons tcell.ButtonMask) core.ScrollDirection {
	switch {
	case buttons&tcell.WheelUp != 0:
		return core.ScrollAway
	case buttons&tcell.WheelDown != 0:
		return core.ScrollToward
	default:
		return core.ScrollNone
	}
}

func modifier(mods tcell.ModMask) core.Modifier {
	switch {
	case mods&tcell.ModCtrl != 0:
		return core.ModPrimary
	case mods&tcell.ModAlt != 0:
		return core.ModSecondary
	default:
		return core.ModNone
	}
}

func (s *Session) resize() {
	w, h := s.screen.Size()
	s.world.SetCanvas(w*s.charPx, h*s.charPx)
}

// Frame advances the world one tick and redraws the screen.
func (s *Session) Frame() {
	s.world.Frame(core.Input{})
	s.Draw()
}

// Draw renders the grid, sampling the cell under each character's center,
// and the status lines on top.
func (s *Session) Draw() {
	s.screen.Clear()
	grid := s.world.Grid()
	cellSize := s.world.GridCellSize()
	w, h := s.screen.Size()
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			gx, gy := sand.Anchor(cx*s.charPx+s.charPx/2, cy*s.charPx+s.charPx/2, cellSize)
			v, ok := grid.Get(gx, gy)
			if !ok || v == core.Empty {
				continue
			}
			col := render.HueColor(v)
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B)))
			s.screen.SetContent(cx, cy, particleRune, nil, style)
		}
	}
	if s.status {
		s.drawStatus(w, h)
	}
	s.screen.Show()
}

func (s *Session) drawStatus(w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	row, col := 0, 1
	for _, r := range s.world.StatusLine() {
		if r == '\n' {
			row++
			col = 1
			continue
		}
		if row >= h {
			return
		}
		if col < w {
			s.screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}

// Run polls events and draws a frame every interval until the user quits.
func (s *Session) Run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	s.Draw()
	for {
		select {
		case ev := <-events:
			if !s.Handle(ev) {
				return
			}
		case <-ticker.C:
			s.Frame()
		}
	}
}
