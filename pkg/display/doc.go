// Package display implements the toast lifecycle state machine: the
// presentation-side driver that takes one toast from off-screen to visible
// and back, phase by phase.
//
// The machine is deliberately explicit. Every animated step is a
// cancellable scheduled transition on a Surface, and every asynchronous
// completion is checked against a generation counter, so a new Display or
// Retract can always cancel in-flight work without stale callbacks
// corrupting state. Phases move strictly
//
//	Hidden -> Entering -> Visible -> Exiting -> Hidden
//
// and no other transition is legal. Retracting while Hidden invokes the
// completion callback immediately and animates nothing.
//
// Rendering itself lives behind the Surface interface; package server
// provides a websocket-backed Surface that runs the actual animations in
// the browser.
package display
