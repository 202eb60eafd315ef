// Package ioweb serves the dashboard over HTTP.
package ioweb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gnames/idmdash/pkg/dashboard"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ShutdownTimeout limits how long running requests may take after the
// server is asked to stop.
const ShutdownTimeout = 5 * time.Second

// Server is the dashboard web server.
type Server struct {
	router *echo.Echo
	ctrl   *dashboard.Controller
	port   int
}

// New creates a Server for a controller.
func New(ctrl *dashboard.Controller, port int) *Server {
	res := &Server{
		router: echo.New(),
		ctrl:   ctrl,
		port:   port,
	}

	e := res.router
	e.HideBanner = true
	e.HidePort = true
	e.Validator = ctrl.Validator()
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				slog.Warn("Request", append(attrs, "error", v.Error)...)
				return nil
			}
			slog.Info("Request", attrs...)
			return nil
		},
	}))

	e.GET("/", res.page)

	api := e.Group("/api/v1")
	api.GET("/health", res.health)
	api.GET("/filters", res.filters)
	api.GET("/dashboard", res.dashboardJSON)
	api.GET("/gauges/:scope", res.gauge)
	api.GET("/timeseries", res.timeSeries)
	api.GET("/map", res.geoJSON)
	api.GET("/ranking", res.ranking)

	return res
}

// Handler exposes routes for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves requests until ctx is canceled, then shuts the server
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	errCh := make(chan error, 1)
	go func() {
		err := s.router.Start(addr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- ServerStartError(addr, err)
		}
		close(errCh)
	}()
	slog.Info("Dashboard server started", "address", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down dashboard server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.router.Shutdown(shutdownCtx)
}
