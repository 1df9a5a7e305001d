/*
Package iterlab is a teaching laboratory for iterative numerical methods.

It solves a scalar equation with the False Position (regula falsi) method and a
square linear system with the Jacobi method, and keeps every iteration so hosts
can render tables and convergence charts.

# Concept

The solvers in pkg/solver are pure functions: same input, same trace. The Lab
facade wraps them for hosts (CLI, HTTP, MCP). It resolves named equations from
a registry, fills in defaults, caches results in a ports.ResultStore keyed by a
digest of the normalized request, and reports each solve through lifecycle hooks.

Non-convergence is not an error. A solve that exhausts its iteration cap returns
the last iterate with Status max_iterations.

# Usage

	lab := iterlab.New(iterlab.WithLogger(logger))

	root, err := lab.FalsePosition(ctx, domain.FalsePositionRequest{
		Equation: "cubic",
		A:        domain.Ptr(1.0),
		B:        domain.Ptr(2.0),
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("root %.6f after %d iterations\n", root.Root, root.Iterations())

	// Empty request: the 3x3 sample system with tol 0.01 and 20 iterations.
	sys, err := lab.Jacobi(ctx, domain.JacobiRequest{})

# Extensibility

Register additional equations with WithRegistry, swap the cache with WithStore
(pkg/adapters/memory, pkg/adapters/redis), and plug metrics in with
WithLifecycleHooks (pkg/observability).
*/
package iterlab
