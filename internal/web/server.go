// Package web hosts the school site: the HTTP server, the route handlers,
// and the per-visitor suggestion sessions.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/brightfieldschool/site/internal/content"
	"github.com/brightfieldschool/site/internal/platform/timeouts"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	Store    content.Store
	Sessions *Sessions
}

// Server hosts the site's HTTP server.
type Server struct {
	httpAddr   string
	store      content.Store
	sessions   *Sessions
	httpServer *http.Server
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.Store == nil {
		return nil, errors.New("content store is required")
	}
	if config.Sessions == nil {
		return nil, errors.New("session registry is required")
	}

	handler := NewHandler(config.Store, config.Sessions)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		store:      config.Store,
		sessions:   config.Sessions,
		httpServer: httpServer,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s.sessions.StartJanitor(ctx, 0)

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the session registry and the content store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.sessions != nil {
		s.sessions.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close content store: %v", err)
		}
	}
}
