package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Button identifies which pointer button is held.
type Button uint8

const (
	// ButtonNone means no button is held.
	ButtonNone Button = iota
	// ButtonPrimary paints.
	ButtonPrimary
	// ButtonSecondary erases.
	ButtonSecondary
)

// Modifier identifies the modifier key held during a scroll event. The
// modifiers select a parameter; they are never combined.
type Modifier uint8

const (
	ModNone Modifier = iota
	// ModPrimary is the control key.
	ModPrimary
	// ModSecondary is the alt key.
	ModSecondary
)

// ScrollDirection is the direction of a single wheel notch.
type ScrollDirection int8

const (
	ScrollNone   ScrollDirection = 0
	ScrollAway   ScrollDirection = 1
	ScrollToward ScrollDirection = -1
)

// Pointer is the pointer state sampled for one frame, in canvas pixels.
type Pointer struct {
	X, Y   int
	Button Button
	// Moved reports whether the pointer should be applied this frame.
	Moved bool
}

// Input gathers everything a front end observed during one frame.
type Input struct {
	Pointer  Pointer
	Scroll   ScrollDirection
	Modifier Modifier
	Toggle   bool
	StepOnce bool
	Clear    bool
	Dunes    bool
}
