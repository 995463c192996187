package toast

// Driver is the presentation side of the controller: an object capable of
// visually presenting one toast and visually retracting it. The controller
// holds at most one driver at a time and never calls Display while a
// previous toast is still visible or animating.
type Driver interface {
	// Display begins presenting req. The driver owns the toast from here:
	// it runs the enter transition, holds the toast on screen, and arranges
	// for the auto-dismiss timeout (typically by calling back into
	// Controller.Dismiss when the display duration elapses).
	Display(req Request)

	// Retract begins the exit transition of the active toast and invokes
	// onComplete exactly once when it has fully left the screen. If no
	// toast is visible, onComplete must still be invoked exactly once.
	Retract(onComplete func())
}
