package server

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/gorilla/websocket"

	"github.com/glazeui/glaze/pkg/display"
	"github.com/glazeui/glaze/pkg/toast"
)

// Session is one connected websocket client. It implements
// display.Surface: the server-side lifecycle renders onto it by streaming
// prepare and transition frames, and the client acknowledges transition
// completion with done frames.
type Session struct {
	ID string

	conn   *websocket.Conn
	ctrl   *toast.Controller
	config *Config
	logger *slog.Logger

	writeMu sync.Mutex // Protects conn writes
	closed  atomic.Bool

	// Transition acks
	seq       atomic.Uint64
	pendingMu sync.Mutex
	pending   map[uint64]*pendingAck

	// Client-reported state
	stateMu     sync.Mutex
	lastMessage string
	screenWidth float64
}

// pendingAck resolves a transition completion exactly once: by client ack,
// by grace timeout, or by session close.
type pendingAck struct {
	once  sync.Once
	fn    func()
	timer *time.Timer
}

func generateSessionID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return hex.EncodeToString(b)
}

func newSession(conn *websocket.Conn, ctrl *toast.Controller, config *Config, logger *slog.Logger) *Session {
	id := generateSessionID()
	return &Session{
		ID:          id,
		conn:        conn,
		ctrl:        ctrl,
		config:      config,
		logger:      logger.With("session_id", id),
		pending:     make(map[uint64]*pendingAck),
		screenWidth: config.ScreenWidth,
	}
}

// Prepare implements display.Surface.
func (s *Session) Prepare(req toast.Request) {
	s.stateMu.Lock()
	s.lastMessage = req.Message
	s.stateMu.Unlock()

	err := s.writeFrame(Frame{
		Type:    FramePrepare,
		Message: req.Message,
		Kind:    string(req.Kind),
	})
	if err != nil {
		s.logger.Error("prepare write failed", "error", err)
	}
}

// Transition implements display.Surface. The frame asks the client to
// animate prop toward value over d; done fires when the client acks, or
// after d plus the configured grace so a dead client cannot wedge the
// lifecycle.
func (s *Session) Transition(prop display.Property, value float64, d time.Duration, done func()) func() {
	seq := s.seq.Add(1)

	if done != nil {
		ack := &pendingAck{fn: done}
		ack.timer = time.AfterFunc(d+s.config.TransitionGrace, func() {
			s.resolve(seq)
		})
		s.pendingMu.Lock()
		s.pending[seq] = ack
		s.pendingMu.Unlock()
	}

	err := s.writeFrame(Frame{
		Type:       FrameTransition,
		Seq:        seq,
		Prop:       prop.String(),
		Value:      value,
		DurationMs: d.Milliseconds(),
	})
	if err != nil {
		s.logger.Error("transition write failed", "error", err, "prop", prop.String())
		// The client will never ack; let the grace timer advance the
		// lifecycle.
	}

	return func() { s.drop(seq) }
}

// TextWidth implements display.Surface with a server-side estimate: the
// client measures precisely, but sequencing only needs the right order of
// magnitude for the width cap.
func (s *Session) TextWidth() float64 {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return float64(utf8.RuneCountInString(s.lastMessage)) * s.config.GlyphWidth
}

// ScreenWidth implements display.Surface.
func (s *Session) ScreenWidth() float64 {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.screenWidth
}

// resolve fires the pending completion for seq, at most once.
func (s *Session) resolve(seq uint64) {
	s.pendingMu.Lock()
	ack, ok := s.pending[seq]
	if ok {
		delete(s.pending, seq)
	}
	s.pendingMu.Unlock()
	if !ok {
		return
	}
	ack.timer.Stop()
	ack.once.Do(ack.fn)
}

// drop discards the pending completion for seq without firing it.
func (s *Session) drop(seq uint64) {
	s.pendingMu.Lock()
	ack, ok := s.pending[seq]
	if ok {
		delete(s.pending, seq)
	}
	s.pendingMu.Unlock()
	if !ok {
		return
	}
	ack.timer.Stop()
	ack.once.Do(func() {})
}

func (s *Session) writeFrame(f Frame) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	data, err := EncodeFrame(f)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// ReadLoop continuously reads client frames and routes them: acks resolve
// pending transitions, request/dismiss frames call into the controller.
// Blocks until the connection closes.
func (s *Session) ReadLoop() {
	defer s.Close()

	s.conn.SetReadLimit(s.config.MaxMessageSize)
	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		frame, err := DecodeFrame(msg)
		if err != nil {
			s.logger.Error("frame decode error", "error", err)
			continue
		}

		switch frame.Type {
		case FrameHello:
			if frame.ScreenWidth > 0 {
				s.stateMu.Lock()
				s.screenWidth = frame.ScreenWidth
				s.stateMu.Unlock()
			}

		case FrameDone:
			s.resolve(frame.Seq)

		case FrameRequest:
			s.ctrl.Request(frame.Message, toast.Kind(frame.Kind), toast.Options{
				DisplayDuration:    time.Duration(frame.DisplayMs) * time.Millisecond,
				TransitionDuration: time.Duration(frame.TransitionMs) * time.Millisecond,
			})

		case FrameDismiss:
			s.ctrl.Dismiss(nil)

		default:
			s.logger.Warn("unknown frame type", "type", frame.Type)
		}
	}
}

// Close tears the session down: the connection closes and every pending
// transition completion fires so the lifecycle and controller never hang
// on a vanished client.
func (s *Session) Close() {
	if s.closed.Swap(true) {
		return
	}

	s.pendingMu.Lock()
	pending := s.pending
	s.pending = make(map[uint64]*pendingAck)
	s.pendingMu.Unlock()
	for _, ack := range pending {
		ack.timer.Stop()
		ack.once.Do(ack.fn)
	}

	if err := s.conn.Close(); err != nil {
		s.logger.Debug("connection close", "error", err)
	}
	s.logger.Debug("session closed")
}
