// Package gateway serves the household over WebSocket: a small framed RPC
// protocol for chat, transcript history, ledger search, and the scripted
// replay, plus the embedded browser UI.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nextlevelbuilder/westmarch/internal/config"
	"github.com/nextlevelbuilder/westmarch/internal/memory"
	"github.com/nextlevelbuilder/westmarch/internal/orchestrator"
	"github.com/nextlevelbuilder/westmarch/internal/sessions"
	"github.com/nextlevelbuilder/westmarch/pkg/protocol"
)

const (
	serverName    = "westmarch"
	serverVersion = "0.1.0"
)

// Server owns the HTTP listener, the connected WebSocket clients, and the
// collaborators every method handler needs.
type Server struct {
	cfg      *config.Config
	orch     *orchestrator.Orchestrator
	ledger   *memory.Ledger
	sessions *sessions.Manager
	router   *MethodRouter
	limiter  *RateLimiter
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[string]*Client

	httpSrv *http.Server
}

func NewServer(cfg *config.Config, orch *orchestrator.Orchestrator, ledger *memory.Ledger, sm *sessions.Manager) *Server {
	s := &Server{
		cfg:      cfg,
		orch:     orch,
		ledger:   ledger,
		sessions: sm,
		limiter:  NewRateLimiter(cfg.Gateway.RateLimitPerMin, 5),
		clients:  make(map[string]*Client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// The gateway binds to loopback by default; cross-origin pages
			// cannot reach it without the operator exposing it deliberately.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	s.router = NewMethodRouter(s)
	return s
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.cfg.Gateway.Host, s.cfg.Gateway.Port)
}

// Handler returns the gateway's HTTP routes.
func (s *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleUI)
	mux.HandleFunc("/ws", s.handleWS(ctx))
	mux.HandleFunc("/healthz", s.handleHealthz)
	return mux
}

// Start serves HTTP until the listener fails or Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:              s.Addr(),
		Handler:           s.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("gateway: listening", "addr", s.Addr())
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("gateway listen: %w", err)
	}
	return nil
}

// Shutdown notifies clients and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Broadcast(protocol.NewEvent(protocol.EventShutdown, map[string]any{"reason": "shutdown"}))
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleWS(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn("gateway: websocket upgrade failed", "error", err)
			return
		}

		client := NewClient(conn, s)
		s.addClient(client)
		slog.Info("gateway: client connected", "client", client.id, "remote", r.RemoteAddr)

		defer func() {
			s.removeClient(client)
			slog.Info("gateway: client disconnected", "client", client.id)
		}()
		client.Run(ctx)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","server":%q,"version":%q}`, serverName, serverVersion)
}

func (s *Server) addClient(c *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c.id] = c
}

func (s *Server) removeClient(c *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, c.id)
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Broadcast pushes an event to every connected client.
func (s *Server) Broadcast(event *protocol.EventFrame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		c.SendEvent(*event)
	}
}
