package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ssargent/genie/pkg/header"
	"go.uber.org/zap"
)

const maxEncodeBody = 4 << 10

// Server holds the API server state
type Server struct {
	codec    PatchCodec
	config   ServerConfig
	metrics  *Metrics
	registry *prometheus.Registry
	logger   *zap.Logger
}

// NewServer creates a new API server with its own metrics registry
func NewServer(codec PatchCodec, config ServerConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := prometheus.NewRegistry()

	return &Server{
		codec:    codec,
		config:   config,
		metrics:  NewMetrics(registry),
		registry: registry,
		logger:   logger,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleDecode decodes the code in the URL path
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	patch, err := s.codec.Decode(code)
	s.metrics.RecordCodecOperation("decode", err)
	if err != nil {
		s.logger.Debug("decode failed", zap.String("code", code), zap.Error(err))
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sendSuccess(w, NewPatchResponse(s.codec.Encode(patch), patch))
}

// handleEncode encodes a code from shorthand or individual fields
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req EncodeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEncodeBody)).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}

	var (
		code string
		err  error
	)
	if req.Shorthand != "" {
		code, err = s.codec.EncodeShorthand(req.Shorthand)
	} else {
		code, err = s.codec.EncodeFields(req.Address, req.Value, req.Compare)
	}
	s.metrics.RecordCodecOperation("encode", err)
	if err != nil {
		s.logger.Debug("encode failed", zap.Any("request", req), zap.Error(err))
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	patch, err := s.codec.Decode(code)
	if err != nil {
		s.logger.Error("encoded code does not decode", zap.String("code", code), zap.Error(err))
		sendError(w, "Failed to verify encoded code", http.StatusInternalServerError)
		return
	}

	sendSuccess(w, NewPatchResponse(code, patch))
}

// handleHeader parses the cartridge header of a ROM image sent as the body
func (s *Server) handleHeader(w http.ResponseWriter, r *http.Request) {
	h, err := header.Read(r.Body)
	s.metrics.RecordCodecOperation("header", err)
	if err != nil {
		if errors.Is(err, header.ErrTruncated) {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.logger.Warn("header read failed", zap.Error(err))
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	sendSuccess(w, NewHeaderResponse(h))
}
