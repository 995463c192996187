package server

import (
	"errors"
	"strings"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	f := Frame{
		Type:       FrameTransition,
		Seq:        7,
		Prop:       "offset",
		Value:      0,
		DurationMs: 400,
	}

	data, err := EncodeFrame(f)
	if err != nil {
		t.Fatalf("EncodeFrame() error: %v", err)
	}
	// Zero is a meaningful transition target and must stay on the wire.
	if !strings.Contains(string(data), `"value":0`) {
		t.Errorf("encoded frame %s missing value field", data)
	}

	got, err := DecodeFrame(data)
	if err != nil {
		t.Fatalf("DecodeFrame() error: %v", err)
	}
	if got != f {
		t.Errorf("round trip = %+v, want %+v", got, f)
	}
}

func TestDecodeFrameRejectsGarbage(t *testing.T) {
	if _, err := DecodeFrame([]byte("{not json")); !errors.Is(err, ErrInvalidFrame) {
		t.Errorf("garbage decode error = %v, want ErrInvalidFrame", err)
	}
}

func TestDecodeFrameRequiresType(t *testing.T) {
	if _, err := DecodeFrame([]byte(`{"seq": 3}`)); !errors.Is(err, ErrInvalidFrame) {
		t.Errorf("missing-type decode error = %v, want ErrInvalidFrame", err)
	}
}
