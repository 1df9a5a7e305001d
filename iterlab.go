package iterlab

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/iterlab/pkg/adapters/memory"
	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/ports"
	"github.com/aretw0/iterlab/pkg/registry"
	"github.com/aretw0/iterlab/pkg/schema"
	"github.com/aretw0/iterlab/pkg/solver"
)

// Lab is the high-level entry point for the iterlab library.
// It resolves equations, applies defaults, memoizes results and reports
// every solve through lifecycle hooks. The solvers themselves stay pure.
type Lab struct {
	registry *registry.Registry
	store    ports.ResultStore
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	now      func() time.Time
}

// Option defines a functional option for configuring the Lab.
type Option func(*Lab)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(l *Lab) {
		l.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lab) {
		l.logger = logger
	}
}

// WithStore sets the result cache. Defaults to an in-memory store.
func WithStore(store ports.ResultStore) Option {
	return func(l *Lab) {
		l.store = store
	}
}

// WithRegistry replaces the builtin equation registry.
func WithRegistry(r *registry.Registry) Option {
	return func(l *Lab) {
		l.registry = r
	}
}

// New initializes a Lab.
func New(opts ...Option) *Lab {
	l := &Lab{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}

	if l.registry == nil {
		l.registry = registry.Default()
	}
	if l.store == nil {
		l.store = memory.NewStore()
	}
	if l.logger == nil {
		l.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return l
}

// Equations lists the registered equations.
func (l *Lab) Equations() []registry.Equation {
	return l.registry.List()
}

// Registry returns the equation registry used by the Lab.
func (l *Lab) Registry() *registry.Registry {
	return l.registry
}

// Store returns the result cache used by the Lab.
func (l *Lab) Store() ports.ResultStore {
	return l.store
}

// NormalizeFalsePosition fills every nil field of req: the equation defaults
// to registry.DefaultEquation, the bracket to the equation's own bracket.
func (l *Lab) NormalizeFalsePosition(req domain.FalsePositionRequest) (domain.FalsePositionRequest, registry.Equation, error) {
	if req.Equation == "" {
		req.Equation = registry.DefaultEquation
	}
	eq, err := l.registry.Lookup(req.Equation)
	if err != nil {
		return req, registry.Equation{}, err
	}
	if req.A == nil {
		req.A = domain.Ptr(eq.Bracket[0])
	}
	if req.B == nil {
		req.B = domain.Ptr(eq.Bracket[1])
	}
	if req.Tolerance == nil {
		req.Tolerance = domain.Ptr(domain.DefaultFalsePositionTolerance)
	}
	if req.MaxIterations == nil {
		req.MaxIterations = domain.Ptr(domain.DefaultFalsePositionMaxIter)
	}
	return req, eq, nil
}

// FalsePosition solves req with the False Position method.
// Results are cached by a digest of the normalized request.
func (l *Lab) FalsePosition(ctx context.Context, req domain.FalsePositionRequest) (*domain.RootResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	norm, eq, err := l.NormalizeFalsePosition(req)
	if err != nil {
		return nil, err
	}
	key, err := Key(domain.MethodFalsePosition, falsePositionKey{
		FalsePositionRequest: norm,
		Expression:           eq.Expression,
		Revision:             eq.Revision,
	})
	if err != nil {
		return nil, err
	}

	rec, err := l.solve(ctx, domain.MethodFalsePosition, key, func() (*domain.Record, error) {
		res, err := solver.FalsePosition(eq.Func, *norm.A, *norm.B, *norm.Tolerance, *norm.MaxIterations)
		if err != nil {
			return nil, err
		}
		res.Equation = eq.Name
		return &domain.Record{Root: res}, nil
	})
	if err != nil {
		return nil, err
	}
	if rec.Root == nil {
		return nil, fmt.Errorf("cached record %s has no root result", key)
	}
	return rec.Root, nil
}

// falsePositionKey binds a cached root to the function behind the equation
// name, not only to the name.
type falsePositionKey struct {
	domain.FalsePositionRequest
	Expression string `json:"expression"`
	Revision   int    `json:"revision"`
}

// Jacobi solves req with the Jacobi method.
// A request without matrix and rhs solves the sample system.
func (l *Lab) Jacobi(ctx context.Context, req domain.JacobiRequest) (*domain.LinearResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	norm := req.Normalize()
	key, err := Key(domain.MethodJacobi, norm)
	if err != nil {
		return nil, err
	}

	rec, err := l.solve(ctx, domain.MethodJacobi, key, func() (*domain.Record, error) {
		res, err := solver.Jacobi(norm.Matrix, norm.RHS, *norm.Tolerance, *norm.MaxIterations)
		if err != nil {
			return nil, err
		}
		return &domain.Record{Linear: res}, nil
	})
	if err != nil {
		return nil, err
	}
	if rec.Linear == nil {
		return nil, fmt.Errorf("cached record %s has no linear result", key)
	}
	return rec.Linear, nil
}

// Solve runs a problem loaded from a batch file or decoded from tool arguments.
func (l *Lab) Solve(ctx context.Context, p schema.Problem) (*domain.Record, error) {
	switch p.Method {
	case domain.MethodFalsePosition:
		res, err := l.FalsePosition(ctx, p.FalsePositionRequest())
		if err != nil {
			return nil, err
		}
		return &domain.Record{Method: p.Method, Root: res}, nil
	case domain.MethodJacobi:
		res, err := l.Jacobi(ctx, p.JacobiRequest())
		if err != nil {
			return nil, err
		}
		return &domain.Record{Method: p.Method, Linear: res}, nil
	default:
		return nil, fmt.Errorf("%w: unknown method %q", domain.ErrInvalidInput, p.Method)
	}
}

func (l *Lab) solve(ctx context.Context, method domain.Method, key string, run func() (*domain.Record, error)) (*domain.Record, error) {
	start := l.now()
	event := &domain.SolveEvent{
		EventBase: domain.EventBase{Timestamp: start, Type: domain.EventSolveStart, Key: key},
		Method:    method,
	}
	if l.hooks.OnSolveStart != nil {
		l.hooks.OnSolveStart(ctx, event)
	}

	rec, cached, err := l.lookupOrRun(ctx, method, key, run)

	finish := *event
	finish.Type = domain.EventSolveFinish
	finish.Timestamp = l.now()
	finish.Duration = finish.Timestamp.Sub(start)
	finish.Cached = cached
	finish.Err = err
	if rec != nil {
		finish.Status, finish.Iterations = summarize(rec)
	}
	if l.hooks.OnSolveFinish != nil {
		l.hooks.OnSolveFinish(ctx, &finish)
	}

	if err != nil {
		l.logger.Debug("solve failed", "method", method, "key", key, "err", err)
		return nil, err
	}
	l.logger.Debug("solve finished",
		"method", method,
		"key", key,
		"status", finish.Status,
		"iterations", finish.Iterations,
		"cached", cached,
	)
	return rec, nil
}

func (l *Lab) lookupOrRun(ctx context.Context, method domain.Method, key string, run func() (*domain.Record, error)) (*domain.Record, bool, error) {
	rec, err := l.store.Load(ctx, key)
	switch {
	case err == nil:
		return rec, true, nil
	case !errors.Is(err, domain.ErrResultNotFound):
		// A broken cache never blocks a solve.
		l.logger.Warn("result cache load failed", "key", key, "err", err)
	}

	rec, err = run()
	if err != nil {
		return nil, false, err
	}
	rec.Key = key
	rec.Method = method
	rec.CreatedAt = l.now().UTC()

	if err := l.store.Save(ctx, key, rec); err != nil {
		l.logger.Warn("result cache save failed", "key", key, "err", err)
	}
	return rec, false, nil
}

func summarize(rec *domain.Record) (domain.Status, int) {
	switch {
	case rec.Root != nil:
		return rec.Root.Status, rec.Root.Iterations()
	case rec.Linear != nil:
		return rec.Linear.Status, rec.Linear.Iterations()
	}
	return "", 0
}

// Key returns the cache key for a normalized request: the hex SHA-256 of
// the method name and the request's JSON encoding.
func Key(method domain.Method, normalized any) (string, error) {
	data, err := json.Marshal(normalized)
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", domain.ErrInvalidInput, err)
	}
	sum := sha256.New()
	sum.Write([]byte(method))
	sum.Write([]byte{0})
	sum.Write(data)
	return hex.EncodeToString(sum.Sum(nil)), nil
}
