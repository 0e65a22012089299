// Package server exposes the roster reports and the assignment ledger over
// HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/ledger"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/report"
)

// Options holds report defaults for requests that do not override them.
type Options struct {
	Weekdays     []string
	DailyPeriods []int
	Location     *time.Location
	Now          func() time.Time
}

// Server wires the snapshot source, the ledger and the report cache into a
// gin engine.
type Server struct {
	mu     sync.RWMutex
	source Source

	ledger *ledger.Ledger
	opts   Options
	cache  *reportCache
	engine *gin.Engine
}

// New builds a Server and registers its routes.
func New(source Source, l *ledger.Ledger, opts Options) *Server {
	if len(opts.Weekdays) == 0 {
		opts.Weekdays = report.DefaultMatrixWeekdays
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Server{
		source: source,
		ledger: l,
		opts:   opts,
		cache:  newReportCache(),
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery(), requestLogger())

	api := s.engine.Group("/api")
	{
		api.GET("/ping", s.ping)
		api.GET("/students", s.students)
		api.POST("/import", s.importSnapshot)

		api.GET("/reports/:kind", s.report)

		api.GET("/assignments/:date", s.assignments)
		api.PUT("/assignments/:date/:period/:key", s.setAssignment)
	}
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) currentSource() Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

func (s *Server) replaceSource(src Source) {
	s.mu.Lock()
	s.source = src
	s.mu.Unlock()
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", time.Since(start),
		}
		if status >= http.StatusInternalServerError {
			slog.Warn("request failed", append(attrs, "errors", c.Errors.String())...)
			return
		}
		slog.Debug("request", attrs...)
	}
}
