// Package api exposes the Game Genie codec and the ROM header inspector over HTTP.
//
// Routes:
//
//	GET  /health
//	GET  /metrics
//	GET  /api/v1/decode/{code}
//	POST /api/v1/encode   {"shorthand": "C0DE?3A:FF"} or {"address": "C0DE", "value": "FF", "compare": "3A"}
//	POST /api/v1/header   raw ROM image
//
// Responses use the APIResponse envelope. /api/v1 routes require X-API-Key
// when the server is configured with a key.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Router builds the HTTP handler with all routes configured
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Get("/health", s.metrics.InstrumentHandler("GET", "/health", s.handleHealth))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.metrics.InstrumentAuthMiddleware(apiKeyMiddleware(s.config.APIKey)))

		r.Get("/decode/{code}", s.metrics.InstrumentHandler("GET", "/api/v1/decode/{code}", s.handleDecode))
		r.Post("/encode", s.metrics.InstrumentHandler("POST", "/api/v1/encode", s.handleEncode))
		r.Post("/header", s.metrics.InstrumentHandler("POST", "/api/v1/header", s.handleHeader))
	})

	return r
}

// Serve handles requests on ln until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()

	s.logger.Info("starting genie API server",
		zap.String("addr", ln.Addr().String()),
		zap.Bool("auth", s.config.APIKey != ""),
	)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down genie API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// StartServer listens on config.Addr() and serves until ctx is cancelled
func StartServer(ctx context.Context, codec PatchCodec, config ServerConfig, logger *zap.Logger) error {
	server := NewServer(codec, config, logger)

	ln, err := net.Listen("tcp", config.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", config.Addr(), err)
	}

	return server.Serve(ctx, ln)
}
