// Package server implements the sensor API's HTTP surface on top of gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/SachinMhetre678/DevOpsESE-L3/internal/config"
	"github.com/SachinMhetre678/DevOpsESE-L3/internal/metrics"
	"github.com/SachinMhetre678/DevOpsESE-L3/internal/sensor"
	"github.com/SachinMhetre678/DevOpsESE-L3/load"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server serves the home, data, cpu-load, health and metrics routes.
type Server struct {
	cfg     config.Config
	logger  *zap.Logger
	gen     *load.Generator
	sensors *sensor.Source
	metrics *metrics.Metrics
	now     func() time.Time

	engine *gin.Engine
	http   *http.Server
}

// New wires the routes and middleware. A nil logger is replaced by a no-op
// logger, a nil generator or sensor source by a default one. When m is nil
// or cfg.MetricsEnabled is false, /metrics is not registered.
func New(cfg config.Config, logger *zap.Logger, gen *load.Generator, sensors *sensor.Source, m *metrics.Metrics) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if gen == nil {
		gen = load.NewGenerator()
	}
	if sensors == nil {
		sensors = sensor.NewSource()
	}
	if !cfg.MetricsEnabled {
		m = nil
	}

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		gen:     gen,
		sensors: sensors,
		metrics: m,
		now:     time.Now,
	}
	s.engine = s.routes()
	s.http = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(s.logger))
	if s.metrics != nil {
		r.Use(observeRequests(s.metrics))
	}
	r.Use(gin.CustomRecovery(s.recoverPanic))

	r.GET("/", s.handleHome)
	r.GET("/data", s.handleData)
	r.GET("/cpu-load", s.handleCPULoad)
	r.GET("/health", s.handleHealth)
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
	r.NoRoute(s.handleNotFound)
	return r
}

// Handler returns the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start listens on the configured address and blocks until the server
// stops. A shutdown initiated through Shutdown is not reported as an error.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	port := s.cfg.Port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	s.logger.Info(fmt.Sprintf("📡 GENTLE CPU IoT Sensor API running on port %d", port),
		zap.String("addr", ln.Addr().String()),
		zap.Bool("metrics", s.metrics != nil),
	)

	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
