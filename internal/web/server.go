package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/abismo-rpg/comandos/internal/blob"
	"github.com/abismo-rpg/comandos/internal/storage"
	"github.com/abismo-rpg/comandos/internal/web/session"
)

// Config defines the inputs for the site server.
type Config struct {
	HTTPAddr   string
	Store      storage.Store
	Assets     blob.Store
	SessionKey []byte
	SessionTTL time.Duration
}

// Server hosts the site HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer builds a configured site server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.Store == nil {
		return nil, errors.New("storage is required")
	}
	if config.Assets == nil {
		return nil, errors.New("asset store is required")
	}
	if len(config.SessionKey) == 0 {
		return nil, errors.New("session key is required")
	}

	handler := NewHandler(config.Store, config.Assets, session.Config{
		Key: config.SessionKey,
		TTL: config.SessionTTL,
	})
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("site listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
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
