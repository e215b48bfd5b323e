// Package api serves the dashboard over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"MarketAnalytic/internal/dashboard"
	"MarketAnalytic/internal/metrics"
)

// Options configures the HTTP layer.
type Options struct {
	Addr           string
	Mode           string // gin mode
	RateLimitRPS   float64
	RateLimitBurst int
	AllowedOrigins []string
	Metrics        *metrics.Metrics
	Logger         *slog.Logger
}

// Server holds the gin engine and the service it exposes.
type Server struct {
	svc    *dashboard.Service
	engine *gin.Engine
	log    *slog.Logger
	http   *http.Server
}

// NewServer builds the router.
func NewServer(svc *dashboard.Service, opts Options) *Server {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	s := &Server{svc: svc, log: log.With("component", "api")}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(s.log), Metrics(opts.Metrics), CORS(opts.AllowedOrigins))

	r.GET("/health", s.health)
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	v1 := r.Group("/v1", RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
	v1.GET("/platforms", s.platforms)
	v1.GET("/platforms/:platform/products", s.products)
	v1.GET("/products/:id/history", s.history)

	s.engine = r
	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves on Options.Addr until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.log.Info("http server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
