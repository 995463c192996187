package display

import (
	"time"

	"github.com/glazeui/glaze/pkg/toast"
)

// Property identifies an animatable visual property of the toast container.
type Property int

const (
	// PropOffset is the normalized slide position: 0 is fully on screen,
	// 1 is fully off screen.
	PropOffset Property = iota

	// PropWidth is the container width in logical pixels.
	PropWidth

	// PropTextOpacity is the message text opacity, 0 to 1.
	PropTextOpacity
)

func (p Property) String() string {
	switch p {
	case PropOffset:
		return "offset"
	case PropWidth:
		return "width"
	case PropTextOpacity:
		return "textOpacity"
	default:
		return "unknown"
	}
}

// Normalized offset positions.
const (
	OffsetOnScreen  = 0.0
	OffsetOffScreen = 1.0
)

// Surface is the rendering seam the lifecycle drives. Implementations own
// pixels (a browser tab, a test fake); the lifecycle owns sequencing.
type Surface interface {
	// Prepare binds req to the surface and resets it to the collapsed
	// baseline: off screen, collapsed width, text hidden.
	Prepare(req toast.Request)

	// Transition animates prop toward value over d. done, if non-nil, must
	// be invoked at most once when the transition completes, and never
	// before Transition returns. The returned cancel stops the transition
	// and suppresses done; it may be nil if the transition cannot be
	// cancelled.
	Transition(prop Property, value float64, d time.Duration, done func()) (cancel func())

	// TextWidth returns the measured width of the prepared message text in
	// logical pixels.
	TextWidth() float64

	// ScreenWidth returns the width of the screen the toast is shown on.
	ScreenWidth() float64
}
