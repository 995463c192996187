package server

import (
	"net/http"
	"time"
)

// Config holds configuration for the toast websocket server.
type Config struct {
	// Address is the listen address for ListenAndServe.
	// Default: ":8490".
	Address string

	// ReadTimeout is the maximum time to wait for a message from the
	// client. Default: 60 seconds.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait when sending a frame.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// TransitionGrace is how long past a transition's duration the server
	// waits for the client's completion ack before advancing the lifecycle
	// on its own. Keeps a stalled client from wedging the toast queue.
	// Default: 500 milliseconds.
	TransitionGrace time.Duration

	// ShutdownTimeout bounds graceful shutdown. Default: 10 seconds.
	ShutdownTimeout time.Duration

	// MaxMessageSize is the maximum size of an inbound websocket message.
	// Default: 32KB.
	MaxMessageSize int64

	// ReadBufferSize and WriteBufferSize size the websocket buffers.
	// Default: 4096 each.
	ReadBufferSize  int
	WriteBufferSize int

	// ScreenWidth is the assumed client screen width in logical pixels
	// until the client's hello frame reports the real one. Default: 390.
	ScreenWidth float64

	// GlyphWidth is the estimated average glyph width used to approximate
	// text measurement server-side. Default: 7.2.
	GlyphWidth float64

	// CheckOrigin validates websocket upgrade origins.
	// Default: same-origin only (the gorilla default).
	CheckOrigin func(r *http.Request) bool

	// MetricsHandler, when non-nil, is mounted at /metrics.
	MetricsHandler http.Handler
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:         ":8490",
		ReadTimeout:     60 * time.Second,
		WriteTimeout:    10 * time.Second,
		TransitionGrace: 500 * time.Millisecond,
		ShutdownTimeout: 10 * time.Second,
		MaxMessageSize:  32 * 1024,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		ScreenWidth:     390,
		GlyphWidth:      7.2,
	}
}

// withDefaults backfills zero fields on a caller-supplied config.
func (c *Config) withDefaults() *Config {
	if c == nil {
		return DefaultConfig()
	}
	defaults := DefaultConfig()
	out := c.Clone()
	if out.Address == "" {
		out.Address = defaults.Address
	}
	if out.ReadTimeout == 0 {
		out.ReadTimeout = defaults.ReadTimeout
	}
	if out.WriteTimeout == 0 {
		out.WriteTimeout = defaults.WriteTimeout
	}
	if out.TransitionGrace == 0 {
		out.TransitionGrace = defaults.TransitionGrace
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if out.MaxMessageSize == 0 {
		out.MaxMessageSize = defaults.MaxMessageSize
	}
	if out.ReadBufferSize == 0 {
		out.ReadBufferSize = defaults.ReadBufferSize
	}
	if out.WriteBufferSize == 0 {
		out.WriteBufferSize = defaults.WriteBufferSize
	}
	if out.ScreenWidth == 0 {
		out.ScreenWidth = defaults.ScreenWidth
	}
	if out.GlyphWidth == 0 {
		out.GlyphWidth = defaults.GlyphWidth
	}
	return out
}

// Clone returns a copy of the Config.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
