package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/glazeui/glaze/pkg/display"
	"github.com/glazeui/glaze/pkg/toast"
)

// Server mounts a toast controller on HTTP: a websocket endpoint for the
// presentation client, a health check, a demo page, and optionally a
// metrics endpoint.
type Server struct {
	ctrl     *toast.Controller
	config   *Config
	upgrader websocket.Upgrader
	router   chi.Router
	logger   *slog.Logger

	mu      sync.Mutex
	active  *Session
	httpSrv *http.Server
}

// New creates a Server for ctrl. config may be nil for defaults.
func New(ctrl *toast.Controller, config *Config) *Server {
	config = config.withDefaults()

	s := &Server{
		ctrl:   ctrl,
		config: config,
		logger: slog.Default().With("component", "server"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Get("/", s.handleDemo)
	r.Get("/ws", s.handleWS)
	r.Get("/healthz", s.handleHealth)
	if config.MetricsHandler != nil {
		r.Handle("/metrics", config.MetricsHandler)
	}
	s.router = r

	return s
}

// Handler returns the HTTP handler for mounting under an existing router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on the configured address until Shutdown.
func (s *Server) ListenAndServe() error {
	s.mu.Lock()
	s.httpSrv = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadTimeout,
	}
	srv := s.httpSrv
	s.mu.Unlock()

	s.logger.Info("listening", "addr", s.config.Address)
	return srv.ListenAndServe()
}

// Shutdown closes the active session and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	active := s.active
	srv := s.httpSrv
	s.mu.Unlock()

	if active != nil {
		active.Close()
	}
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// handleWS upgrades the connection and mounts the session as the
// controller's display driver for as long as it lives.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	session := newSession(conn, s.ctrl, s.config, s.logger)
	lifecycle := display.New(session,
		display.WithAutoDismiss(func() { s.ctrl.Dismiss(nil) }),
		display.WithLifecycleLogger(s.logger),
	)

	// Last writer wins: a new client replaces the previous driver. The
	// new driver registers before the displaced session closes, so the
	// completion callbacks Close fires cannot drain a queued toast onto
	// the dead driver.
	s.mu.Lock()
	previous := s.active
	s.active = session
	s.mu.Unlock()
	s.ctrl.SetDriver(lifecycle)
	if previous != nil {
		previous.Close()
	}
	s.logger.Info("presentation mounted", "session_id", session.ID)

	session.ReadLoop()

	// Unregister only if this session is still the active driver.
	s.mu.Lock()
	still := s.active == session
	if still {
		s.active = nil
	}
	s.mu.Unlock()
	if still {
		s.ctrl.SetDriver(nil)
	}
	s.logger.Info("presentation unmounted", "session_id", session.ID)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(demoHTML))
}
