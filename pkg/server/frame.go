package server

import (
	"encoding/json"
	"fmt"
)

// FrameType identifies a websocket frame.
type FrameType string

const (
	// Server -> client.

	// FramePrepare binds a toast to the client surface and resets it to
	// the collapsed baseline.
	FramePrepare FrameType = "prepare"
	// FrameTransition starts a client-side animation of one property.
	FrameTransition FrameType = "transition"

	// Client -> server.

	// FrameHello reports client capabilities after connect.
	FrameHello FrameType = "hello"
	// FrameDone acknowledges completion of a transition by sequence.
	FrameDone FrameType = "done"
	// FrameRequest raises a toast request from the client.
	FrameRequest FrameType = "request"
	// FrameDismiss dismisses the visible toast from the client.
	FrameDismiss FrameType = "dismiss"
)

// Frame is the JSON wire format shared by both directions. Unused fields
// are omitted per frame type; Value is kept unconditionally because zero
// is a meaningful transition target.
type Frame struct {
	Type FrameType `json:"type"`
	Seq  uint64    `json:"seq,omitempty"`

	// prepare / request
	Message      string `json:"message,omitempty"`
	Kind         string `json:"kind,omitempty"`
	DisplayMs    int64  `json:"displayMs,omitempty"`
	TransitionMs int64  `json:"transitionMs,omitempty"`

	// transition
	Prop       string  `json:"prop,omitempty"`
	Value      float64 `json:"value"`
	DurationMs int64   `json:"durationMs,omitempty"`

	// hello
	ScreenWidth float64 `json:"screenWidth,omitempty"`
}

// EncodeFrame serializes a frame for the wire.
func EncodeFrame(f Frame) ([]byte, error) {
	return json.Marshal(f)
}

// DecodeFrame parses an inbound message.
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("%w: %v", ErrInvalidFrame, err)
	}
	if f.Type == "" {
		return Frame{}, fmt.Errorf("%w: missing type", ErrInvalidFrame)
	}
	return f, nil
}
