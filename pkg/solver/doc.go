/*
Package solver implements the iterative numerical methods taught by iterlab.

Every function is pure: it takes all parameters explicitly, keeps no state between
calls, performs no I/O, and returns the accepted value together with the full
iteration trace. Calls are safe to run concurrently; each loop is sequential.

# Methods

  - FalsePosition: bracketing root finder that replaces one endpoint per pass using
    linear interpolation between f(a) and f(b).
  - Jacobi: fixed-point iteration for Ax = b where every component of the next
    iterate is computed from the previous full iterate.
  - Direct: sparse LU solve of Ax = b, used as a reference for iterative estimates.

Exhausting the iteration cap is not an error: the result carries
domain.StatusMaxIterations and the last estimate.
*/
package solver
