package server

import "errors"

// Sentinel errors for session and transport conditions.
var (
	// ErrSessionClosed is returned when a frame is written to a closed
	// session.
	ErrSessionClosed = errors.New("server: session closed")

	// ErrInvalidFrame is returned when an inbound message cannot be
	// decoded into a frame.
	ErrInvalidFrame = errors.New("server: invalid frame")
)
