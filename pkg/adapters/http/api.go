package http

import (
	"fmt"
	"net/http"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// SolveParams holds the query parameters shared by the solve endpoints.
type SolveParams struct {
	// Chart includes a Mermaid xychart of the convergence.
	Chart *bool `form:"chart,omitempty" json:"chart,omitempty"`
	// Trace includes the per-iteration trace (default true).
	Trace *bool `form:"trace,omitempty" json:"trace,omitempty"`
}

// FalsePositionResponse is the body of POST /solve/false-position.
type FalsePositionResponse struct {
	Result *domain.RootResult `json:"result"`
	Chart  *string            `json:"chart,omitempty"`
}

// JacobiResponse is the body of POST /solve/jacobi.
type JacobiResponse struct {
	Result *domain.LinearResult `json:"result"`
	Exact  []float64            `json:"exact,omitempty"`
	Chart  *string              `json:"chart,omitempty"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /solve/false-position)
	SolveFalsePosition(w http.ResponseWriter, r *http.Request, params SolveParams)
	// (POST /solve/jacobi)
	SolveJacobi(w http.ResponseWriter, r *http.Request, params SolveParams)
	// (GET /equations)
	ListEquations(w http.ResponseWriter, r *http.Request)
	// (GET /health)
	GetHealth(w http.ResponseWriter, r *http.Request)
	// (GET /info)
	GetInfo(w http.ResponseWriter, r *http.Request)
}

// HandlerFromMux registers the API routes on r.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	r.Post("/solve/false-position", withSolveParams(si.SolveFalsePosition))
	r.Post("/solve/jacobi", withSolveParams(si.SolveJacobi))
	r.Get("/equations", si.ListEquations)
	r.Get("/health", si.GetHealth)
	r.Get("/info", si.GetInfo)
	return r
}

func withSolveParams(next func(http.ResponseWriter, *http.Request, SolveParams)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params SolveParams
		query := r.URL.Query()

		if err := runtime.BindQueryParameter("form", true, false, "chart", query, &params.Chart); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid format for parameter chart: %w", err))
			return
		}
		if err := runtime.BindQueryParameter("form", true, false, "trace", query, &params.Trace); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid format for parameter trace: %w", err))
			return
		}
		next(w, r, params)
	}
}
