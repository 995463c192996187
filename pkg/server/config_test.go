package server

import (
	"testing"
	"time"
)

func TestWithDefaultsOnNil(t *testing.T) {
	var c *Config
	got := c.withDefaults()
	want := DefaultConfig()
	if got.Address != want.Address {
		t.Errorf("Address = %q, want %q", got.Address, want.Address)
	}
	if got.TransitionGrace != want.TransitionGrace {
		t.Errorf("TransitionGrace = %v, want %v", got.TransitionGrace, want.TransitionGrace)
	}
}

func TestWithDefaultsKeepsExplicitValues(t *testing.T) {
	c := &Config{
		Address:     ":9999",
		ReadTimeout: 5 * time.Second,
	}
	got := c.withDefaults()
	if got.Address != ":9999" {
		t.Errorf("Address = %q, want :9999", got.Address)
	}
	if got.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", got.ReadTimeout)
	}
	if got.WriteTimeout != DefaultConfig().WriteTimeout {
		t.Errorf("WriteTimeout = %v, want default", got.WriteTimeout)
	}
	// The caller's config must not be mutated.
	if c.WriteTimeout != 0 {
		t.Errorf("input config mutated: WriteTimeout = %v", c.WriteTimeout)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := DefaultConfig()
	clone := c.Clone()
	clone.Address = ":1234"
	if c.Address == clone.Address {
		t.Error("Clone shares state with original")
	}
	var nilConfig *Config
	if nilConfig.Clone() != nil {
		t.Error("Clone of nil config should be nil")
	}
}
