package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/iterlab/pkg/domain"
)

// Aggregate combines multiple hook sets into one. Callbacks run in the
// order the sets were given; nil callbacks are skipped.
func Aggregate(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var starts, finishes []func(context.Context, *domain.SolveEvent)
	for _, h := range sets {
		if h.OnSolveStart != nil {
			starts = append(starts, h.OnSolveStart)
		}
		if h.OnSolveFinish != nil {
			finishes = append(finishes, h.OnSolveFinish)
		}
	}

	return domain.LifecycleHooks{
		OnSolveStart:  fanOut(starts),
		OnSolveFinish: fanOut(finishes),
	}
}

func fanOut(fns []func(context.Context, *domain.SolveEvent)) func(context.Context, *domain.SolveEvent) {
	if len(fns) == 0 {
		return nil
	}
	return func(ctx context.Context, e *domain.SolveEvent) {
		for _, fn := range fns {
			fn(ctx, e)
		}
	}
}

// LogHooks returns hooks that write an audit line per finished solve.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSolveFinish: func(ctx context.Context, e *domain.SolveEvent) {
			if e.Err != nil {
				logger.WarnContext(ctx, "solve_failed", "method", e.Method, "err", e.Err)
				return
			}
			logger.InfoContext(ctx, "solve_finish",
				"method", e.Method,
				"status", e.Status,
				"iterations", e.Iterations,
				"cached", e.Cached,
				"duration", e.Duration,
			)
		},
	}
}
