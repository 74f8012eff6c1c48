// Package api exposes the EOF validator over HTTP, grounded on the
// reference client's internal/api package (Server struct, Register(e),
// per-request error helpers) but built on echo/v5's pointer Context.
package api

import (
	"time"

	"github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eof2030/eof1validate/config"
	"github.com/eof2030/eof1validate/internal/metrics"
	applog "github.com/eof2030/eof1validate/log"
)

// Server wires the validator core into HTTP handlers.
type Server struct {
	cfg     config.Config
	metrics *metrics.Registry
	log     *applog.Logger
	clock   func() time.Time
}

// NewServer builds a Server from the resolved configuration.
func NewServer(cfg config.Config, m *metrics.Registry) *Server {
	return &Server{
		cfg:     cfg,
		metrics: m,
		log:     applog.Default().Module("api"),
		clock:   time.Now,
	}
}

// Register mounts the validator's routes onto e.
func (s *Server) Register(e *echo.Echo) {
	g := e.Group("/v1")
	g.POST("/validate", s.handleValidate)
	g.POST("/read-header", s.handleReadHeader)
	g.POST("/append-data", s.handleAppendData)

	if s.cfg.Metrics && s.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.metrics.Gatherer, promhttp.HandlerOpts{})))
	}
}
