// Package diagnostics implements an optional read-only introspection
// HTTP server: a go-chi/chi router exposing the tracked-device table,
// manifest/legacy action state, and the event queue as JSON, plus a
// tablewriter-rendered /dump endpoint for pasting into bug reports. It
// is started only when config.DiagnosticsConfig.Enabled is set, is
// never required for correctness, and never mutates the session it
// observes.
package diagnostics

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Supreeeme/xrizer/internal/devices"
	"github.com/Supreeeme/xrizer/internal/events"
	"github.com/Supreeeme/xrizer/internal/legacy"
	"github.com/Supreeeme/xrizer/internal/logger"
	"github.com/Supreeeme/xrizer/internal/manifest"
)

// Source is the read-only view of session state the diagnostics
// server renders. internal/session.Data already exposes every one of
// these accessors, so it satisfies Source with no changes of its own;
// tests supply a lighter stub.
type Source interface {
	Devices() *devices.Table
	Loaded() (*manifest.LoadedActions, bool)
	LegacyActions() (*legacy.Actions, *legacy.State, bool)
	Events() *events.Queue
}

// Server is an HTTP server exposing a Source over /devices, /actions,
// /events, and /dump. The zero value is not usable; construct with
// New.
type Server struct {
	server       *http.Server
	addr         string
	shutdownOnce sync.Once
}

// New builds a diagnostics Server bound to addr, serving data from
// src. The server is created stopped; call Start to begin serving.
func New(addr string, src Source) *Server {
	return &Server{
		server: &http.Server{
			Addr:    addr,
			Handler: newRouter(src),
		},
		addr: addr,
	}
}

// newRouter builds the chi router backing a Server.
func newRouter(src Source) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	h := &handlers{src: src}
	r.Get("/devices", h.devices)
	r.Get("/actions", h.actions)
	r.Get("/events", h.events)
	r.Get("/dump", h.dump)

	return r
}

// Start starts the diagnostics HTTP server and blocks until ctx is
// cancelled or the server fails to serve. On cancellation it performs
// a graceful shutdown and returns nil.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		logger.Info("diagnostics server listening", "addr", s.addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			select {
			case errChan <- err:
			default:
			}
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Stop(shutdownCtx)
	case err := <-errChan:
		return fmt.Errorf("diagnostics server failed: %w", err)
	}
}

// Stop initiates graceful shutdown. Safe to call multiple times and
// concurrently with Start.
func (s *Server) Stop(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if err := s.server.Shutdown(ctx); err != nil {
			shutdownErr = fmt.Errorf("diagnostics server shutdown error: %w", err)
			logger.Error("diagnostics server shutdown error", "error", err)
		} else {
			logger.Info("diagnostics server stopped gracefully")
		}
	})
	return shutdownErr
}
