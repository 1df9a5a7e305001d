/*
Package domain contains the core data model shared by the iterlab solvers and their hosts.

It defines the per-iteration records (traces), the solve requests and results, the
convergence status, and the sentinel errors. The package has no dependencies beyond
the standard library and performs no I/O.

# Key Entities

  - FalsePositionStep: One pass of the regula falsi loop {index, a, b, c, f(a), f(b), f(c)}.
  - JacobiStep: One pass of the Jacobi loop {index, x, max change}.
  - RootResult / LinearResult: The accepted value, its Status, and the full trace.
  - Status: Converged, or MaxIterations when the cap ran out first (best-effort value).
  - Record: A stored solve outcome, keyed by a digest of the normalized request.
*/
package domain
