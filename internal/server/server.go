package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/genc-murat/crystalmetrics/internal/metrics"
	"github.com/genc-murat/crystalmetrics/internal/probe"
)

type Server struct {
	endpoint *metrics.Endpoint
	conns    *probe.ConnTracker
	router   *gin.Engine
	log      zerolog.Logger

	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener
}

type ServerConfig struct {
	Mode         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// NewServer wires the metrics routes on a fresh gin engine. A nil conns
// tracker disables connection counting.
func NewServer(endpoint *metrics.Endpoint, conns *probe.ConnTracker, log zerolog.Logger, config ServerConfig) *Server {
	if config.Mode != "" {
		gin.SetMode(config.Mode)
	}

	s := &Server{
		endpoint: endpoint,
		conns:    conns,
		router:   gin.New(),
		log:      log,
	}

	s.router.Use(gin.Recovery(), s.requestLogger(), s.latencyRecorder())
	s.registerRoutes()

	s.httpServer = &http.Server{
		Handler:      s.router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}
	if conns != nil {
		s.httpServer.ConnState = conns.ConnState
	}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on address and serves until Shutdown is called.
func (s *Server) Start(address string) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	return s.Serve(listener)
}

func (s *Server) Serve(listener net.Listener) error {
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	s.log.Info().Str("addr", listener.Addr().String()).Msg("Server listening")

	err := s.httpServer.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Addr reports the bound address once Serve has started.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}
