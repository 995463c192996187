package toast_test

import (
	"testing"
	"time"

	"github.com/glazeui/glaze/pkg/toast"
)

func TestNewRequestTrimsAndDefaults(t *testing.T) {
	req, ok := toast.NewRequest("  saved  ", toast.KindSuccess, toast.Options{})
	if !ok {
		t.Fatal("expected request to be accepted")
	}
	if req.Message != "saved" {
		t.Errorf("message = %q, want %q", req.Message, "saved")
	}
	if req.Kind != toast.KindSuccess {
		t.Errorf("kind = %q, want %q", req.Kind, toast.KindSuccess)
	}
	if req.Options.DisplayDuration != toast.DefaultDisplayDuration {
		t.Errorf("display duration = %v, want %v", req.Options.DisplayDuration, toast.DefaultDisplayDuration)
	}
	if req.Options.TransitionDuration != toast.DefaultTransitionDuration {
		t.Errorf("transition duration = %v, want %v", req.Options.TransitionDuration, toast.DefaultTransitionDuration)
	}
}

func TestNewRequestRejectsBlankMessages(t *testing.T) {
	for _, msg := range []string{"", "   ", "\t\n"} {
		if _, ok := toast.NewRequest(msg, toast.KindInfo, toast.Options{}); ok {
			t.Errorf("NewRequest(%q) accepted, want rejected", msg)
		}
	}
}

func TestNewRequestNormalizesUnknownKind(t *testing.T) {
	req, ok := toast.NewRequest("hi", toast.Kind("fatal"), toast.Options{})
	if !ok {
		t.Fatal("expected request to be accepted")
	}
	if req.Kind != toast.KindInfo {
		t.Errorf("kind = %q, want %q", req.Kind, toast.KindInfo)
	}
}

func TestNewRequestKeepsExplicitTimings(t *testing.T) {
	opts := toast.Options{
		DisplayDuration:    2 * time.Second,
		TransitionDuration: 150 * time.Millisecond,
	}
	req, ok := toast.NewRequest("hi", toast.KindInfo, opts)
	if !ok {
		t.Fatal("expected request to be accepted")
	}
	if req.Options != opts {
		t.Errorf("options = %+v, want %+v", req.Options, opts)
	}
}
