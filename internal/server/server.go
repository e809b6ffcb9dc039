package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"upload/api/internal/config"
	"upload/api/internal/health"
	"upload/api/internal/upload"

	"github.com/rs/zerolog"
)

// Server wires configuration, services and HTTP routing together.
type Server struct {
	cfg       config.Config
	log       zerolog.Logger
	health    health.Provider
	uploads   upload.Uploader
	startedAt time.Time
}

// New instantiates the HTTP server with the host health provider and the default upload service.
func New(cfg config.Config, log zerolog.Logger) *Server {
	return &Server{
		cfg:       cfg,
		log:       log,
		health:    health.NewHostProvider(),
		uploads:   upload.NewService(),
		startedAt: time.Now().UTC(),
	}
}

// Handler exposes the routed handler, mostly for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

// Run binds the configured address and serves until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	addr := s.cfg.Address()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve handles connections on ln and blocks until the context is cancelled or an unrecoverable error occurs.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:      s.routes(),
		ReadTimeout:  s.cfg.HTTP.ReadTimeout,
		WriteTimeout: s.cfg.HTTP.WriteTimeout,
		IdleTimeout:  s.cfg.HTTP.IdleTimeout,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	s.log.Info().Str("addr", ln.Addr().String()).Msg("server is running")
	if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done

	s.log.Info().Dur("uptime", time.Since(s.startedAt)).Msg("http server stopped")
	return nil
}
