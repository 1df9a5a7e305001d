package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/iterlab"
	"github.com/aretw0/iterlab/internal/presentation/chart"
	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/registry"
	"github.com/aretw0/iterlab/pkg/solver"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes caps request bodies; a 100x100 system fits comfortably.
const maxBodyBytes = 1 << 20

// Lab defines the solving core the server exposes.
type Lab interface {
	FalsePosition(ctx context.Context, req domain.FalsePositionRequest) (*domain.RootResult, error)
	Jacobi(ctx context.Context, req domain.JacobiRequest) (*domain.LinearResult, error)
	Equations() []registry.Equation
}

// Server implements ServerInterface.
type Server struct {
	Lab    Lab
	Logger *slog.Logger
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures the handler.
type Option func(*handlerConfig)

type handlerConfig struct {
	logger  *slog.Logger
	metrics http.Handler
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *handlerConfig) {
		c.logger = logger
	}
}

// WithMetricsHandler overrides the /metrics handler (default: promhttp.Handler()).
func WithMetricsHandler(h http.Handler) Option {
	return func(c *handlerConfig) {
		c.metrics = h
	}
}

// NewHandler creates a new HTTP handler for the lab.
func NewHandler(lab Lab, opts ...Option) http.Handler {
	cfg := &handlerConfig{
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		metrics: promhttp.Handler(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	server := &Server{Lab: lab, Logger: cfg.logger}
	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			cfg.logger.Error("Failed to load OpenAPI spec", "err", err)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(spec)
	})
	r.Handle("/metrics", cfg.metrics)

	handler := HandlerFromMux(server, r)
	return enableCORS(handler)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SolveFalsePosition handles the POST /solve/false-position request.
func (s *Server) SolveFalsePosition(w http.ResponseWriter, r *http.Request, params SolveParams) {
	var body domain.FalsePositionRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		s.Logger.Warn("SolveFalsePosition: Invalid request body", "err", err)
		return
	}

	res, err := s.Lab.FalsePosition(r.Context(), body)
	if err != nil {
		s.fail(w, "SolveFalsePosition", err)
		return
	}

	resp := FalsePositionResponse{Result: res}
	if enabled(params.Chart, false) {
		resp.Chart = ptr(chart.FalsePosition(res))
	}
	if !enabled(params.Trace, true) {
		trimmed := *res
		trimmed.Trace = nil
		resp.Result = &trimmed
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// SolveJacobi handles the POST /solve/jacobi request.
func (s *Server) SolveJacobi(w http.ResponseWriter, r *http.Request, params SolveParams) {
	var body domain.JacobiRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		s.Logger.Warn("SolveJacobi: Invalid request body", "err", err)
		return
	}

	res, err := s.Lab.Jacobi(r.Context(), body)
	if err != nil {
		s.fail(w, "SolveJacobi", err)
		return
	}

	resp := JacobiResponse{Result: res}
	norm := body.Normalize()
	if exact, err := solver.Direct(norm.Matrix, norm.RHS); err == nil {
		resp.Exact = exact
	}
	if enabled(params.Chart, false) {
		resp.Chart = ptr(chart.Jacobi(res))
	}
	if !enabled(params.Trace, true) {
		trimmed := *res
		trimmed.Trace = nil
		resp.Result = &trimmed
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// ListEquations handles the GET /equations request.
func (s *Server) ListEquations(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Lab.Equations())
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "iterlab-http",
		"version":     strings.TrimSpace(iterlab.Version),
		"api_version": apiVersion,
	})
}

// StatusFor maps a solve error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnknownEquation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDivisionByZero), errors.Is(err, domain.ErrNonFinite), errors.Is(err, domain.ErrSingular):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error(op+" failed", "err", err)
	} else {
		s.Logger.Debug(op+" rejected", "err", err, "status", status)
	}
	writeError(w, status, err)
}

// writeJSON encodes v before committing the status so that an encode
// failure still reaches the client as a 500.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
		writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to encode response: %w", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

// -- Helpers --

func ptr[T any](v T) *T {
	return &v
}

func enabled(flag *bool, def bool) bool {
	if flag == nil {
		return def
	}
	return *flag
}
