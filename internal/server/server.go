// Package server exposes the scrabble play operation over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/arielf-camacho/cold-stream/internal/logger"
	"github.com/arielf-camacho/cold-stream/internal/telemetry"
	"github.com/arielf-camacho/cold-stream/scrabble"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

const shutdownTimeout = 5 * time.Second

// Config contains the server configuration. Without Instruments, plays are
// recorded on the global OpenTelemetry providers.
type Config struct {
	Addr        string
	Tables      scrabble.Tables
	Top         int
	Instruments *telemetry.Instruments
}

// Server serves the play operation. Every request plays with its own
// histogram cache.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	validate   *validator.Validate
	config     Config
	log        zerolog.Logger
}

// New creates a new Server with its routes registered.
func New(cfg Config, log zerolog.Logger) (*Server, error) {
	if cfg.Top <= 0 {
		cfg.Top = scrabble.DefaultTop
	}
	if cfg.Instruments == nil {
		instruments, err := telemetry.NewGlobalInstruments()
		if err != nil {
			return nil, err
		}
		cfg.Instruments = instruments
	}

	engine := gin.New()
	s := &Server{
		engine:   engine,
		validate: newValidator(),
		config:   cfg,
		log:      log.With().Str(logger.FieldComponent, "server").Logger(),
	}

	engine.Use(gin.Recovery(), requestID(), s.requestLogger())
	engine.GET("/healthz", s.health)
	engine.POST("/v1/play", s.play)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(engine, &http2.Server{IdleTimeout: 120 * time.Second}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until the context is done, then shuts the server down.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("server failed to bind %s: %w", s.config.Addr, err)
	}

	s.log.Info().Str("addr", listener.Addr().String()).Msg("HTTP server started")

	errs := make(chan error, 1)
	go func() {
		errs <- s.httpServer.Serve(listener)
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
