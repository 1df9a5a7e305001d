package observability

import (
	"context"
	"errors"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for solver activity.
type Metrics struct {
	Solves     *prometheus.CounterVec
	Failures   *prometheus.CounterVec
	CacheHits  *prometheus.CounterVec
	Iterations *prometheus.HistogramVec
	Duration   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on promhttp.Handler.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "iterlab_solves_total",
				Help: "Total number of completed solves",
			},
			[]string{"method", "status"},
		),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "iterlab_solve_failures_total",
				Help: "Total number of solves that returned an error",
			},
			[]string{"method", "reason"},
		),
		CacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "iterlab_cache_hits_total",
				Help: "Total number of solves served from the result cache",
			},
			[]string{"method"},
		),
		Iterations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "iterlab_solve_iterations",
				Help:    "Iterations performed per solve",
				Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
			},
			[]string{"method"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "iterlab_solve_duration_seconds",
				Help: "Duration of solves, including cache lookups",
			},
			[]string{"method"},
		),
	}

	for _, c := range []prometheus.Collector{m.Solves, m.Failures, m.CacheHits, m.Iterations, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record every finished solve.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSolveFinish: func(_ context.Context, e *domain.SolveEvent) {
			method := string(e.Method)
			m.Duration.WithLabelValues(method).Observe(e.Duration.Seconds())

			if e.Err != nil {
				m.Failures.WithLabelValues(method, FailureReason(e.Err)).Inc()
				return
			}

			m.Solves.WithLabelValues(method, string(e.Status)).Inc()
			if e.Cached {
				m.CacheHits.WithLabelValues(method).Inc()
				return
			}
			m.Iterations.WithLabelValues(method).Observe(float64(e.Iterations))
		},
	}
}

// FailureReason maps a solve error to a low-cardinality label value.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, domain.ErrNonFinite):
		return "non_finite"
	case errors.Is(err, domain.ErrSingular):
		return "singular"
	case errors.Is(err, domain.ErrUnknownEquation):
		return "unknown_equation"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "other"
}
