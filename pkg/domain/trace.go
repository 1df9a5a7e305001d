package domain

import "strconv"

// Method identifies a numerical method.
type Method string

const (
	MethodFalsePosition Method = "false_position"
	MethodJacobi        Method = "jacobi"
)

// FalsePositionStep is one pass of the regula falsi loop.
// Values are the ones in effect when the pass started, plus the new estimate C.
type FalsePositionStep struct {
	Index int     `json:"index"`
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	C     float64 `json:"c"`
	FA    float64 `json:"fa"`
	FB    float64 `json:"fb"`
	FC    float64 `json:"fc"`
}

// JacobiStep is one pass of the Jacobi loop.
// X is the full new iterate; for a 3x3 system X[0], X[1], X[2] are x, y, z.
type JacobiStep struct {
	Index     int       `json:"index"`
	X         []float64 `json:"x"`
	MaxChange float64   `json:"max_change"`
}

// Status reports how an iteration loop ended.
type Status string

const (
	// StatusConverged means the tolerance test passed.
	StatusConverged Status = "converged"
	// StatusMaxIterations means the cap ran out first; the value is a best effort.
	StatusMaxIterations Status = "max_iterations"
)

// Converged reports whether the loop met its tolerance.
func (s Status) Converged() bool {
	return s == StatusConverged
}

// ComponentNames labels the unknowns of an n-variable system:
// x, y, z for three unknowns, x1..xn otherwise.
func ComponentNames(n int) []string {
	if n == 3 {
		return []string{"x", "y", "z"}
	}
	names := make([]string, n)
	for i := range names {
		names[i] = "x" + strconv.Itoa(i+1)
	}
	return names
}
