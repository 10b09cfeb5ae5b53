// SPDX-License-Identifier: MIT

// Package server exposes diagram normalization, evaluation, equivalence and
// rendering over HTTP.
//
// Routes:
//
//	GET  /healthz
//	POST /v1/normalize   {expr, dom, boxes, left}
//	POST /v1/eval        {expr, dom, boxes, input}
//	POST /v1/equivalent  {expr, other, dom, boxes}
//	POST /v1/render      {expr, dom, boxes, format}
//
// Normal forms are cached under a SHA-256 key of the request.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/lvcat/internal/cache"
	"github.com/katalvlaran/lvcat/internal/config"
)

// Default limits used when the configuration leaves them at zero.
const (
	DefaultMaxBodyBytes = 1 << 20
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 30 * time.Second
)

// Server serves the lvcat HTTP API.
type Server struct {
	cfg      config.ServerConfig
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *log.Logger
	router   chi.Router
	srv      *http.Server
	ln       net.Listener
}

// Option configures a Server.
type Option func(*Server)

// WithCache stores normal forms in c for ttl (0 means no expiry).
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Server) { s.cache, s.cacheTTL = c, ttl }
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New builds a server. Without WithCache nothing is cached.
func New(cfg config.ServerConfig, opts ...Option) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	s := &Server{cfg: cfg, cache: cache.NewNullCache(), logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()

	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(s.cfg.MaxBodyBytes))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/normalize", s.handleNormalize)
		r.Post("/eval", s.handleEval)
		r.Post("/equivalent", s.handleEquivalent)
		r.Post("/render", s.handleRender)
	})

	return r
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Start listens on the configured address and serves in the background.
// It returns once the listener is bound.
func (s *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen on %s: %w", s.cfg.Addr, err)
	}
	s.ln = ln
	s.srv = &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("serve", "err", err)
		}
	}()
	s.logger.Info("listening", "addr", ln.Addr().String())

	return nil
}

// Addr returns the listener address, useful with port 0.
func (s *Server) Addr() net.Addr {
	if s.ln != nil {
		return s.ln.Addr()
	}
	return nil
}

// Stop shuts the server down gracefully and closes the cache.
func (s *Server) Stop(ctx context.Context) error {
	var err error
	if s.srv != nil {
		err = s.srv.Shutdown(ctx)
	}
	if cerr := s.cache.Close(); cerr != nil && err == nil {
		err = cerr
	}

	return err
}
