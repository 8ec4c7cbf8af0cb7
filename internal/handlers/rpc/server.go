// Package rpc exposes the snap handler over HTTP as a JSON-RPC 2.0 endpoint.
//
// Two methods are served, mirroring the snap's entry points:
//
//   - onRpcRequest: params {origin, request}
//   - onTransaction: params {transaction, chainId}
//
// POST / carries the JSON-RPC envelope and GET /healthz reports liveness.
package rpc

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gabapcia/txinsight/internal/pkg/logger"
	"github.com/gabapcia/txinsight/internal/snap"
)

var ErrServerAlreadyStarted = errors.New("server already started")

// maxBodySize bounds a single JSON-RPC request body.
const maxBodySize = 1 << 20

type closeFunc func()

// Server serves a snap.Handler over HTTP.
type Server struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc
	addr      net.Addr

	address         string
	handler         snap.Handler
	shutdownTimeout time.Duration
	mux             *http.ServeMux
}

type config struct {
	shutdownTimeout time.Duration
}

type Option func(*config)

// WithShutdownTimeout bounds how long Close waits for in-flight requests.
// Default: 5 seconds.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) {
		c.shutdownTimeout = d
	}
}

// NewServer creates a Server listening on address once started.
func NewServer(address string, handler snap.Handler, opts ...Option) *Server {
	cfg := config{
		shutdownTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Server{
		address:         address,
		handler:         handler,
		shutdownTimeout: cfg.shutdownTimeout,
		mux:             http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /{$}", s.handleRPC)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Start binds the listener and serves requests in the background until Close.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServerAlreadyStarted
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "snap rpc server stopped", "error", err)
		}
	}()

	logger.Info(ctx, "snap rpc server listening", "address", ln.Addr().String())

	s.addr = ln.Addr()
	s.closeFunc = func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn(ctx, "snap rpc server shutdown", "error", err)
			_ = srv.Close()
		}
		<-done
	}
	s.isStarted = true
	return nil
}

// Addr returns the bound address, or nil when the server is not started.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addr
}

// Close gracefully stops the server.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
	s.addr = nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
