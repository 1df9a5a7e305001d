package domain

import "fmt"

// Default parameters. False Position defaults come from the method contract;
// Jacobi defaults mirror the sample problem shown to students.
const (
	DefaultFalsePositionTolerance = 1e-6
	DefaultFalsePositionMaxIter   = 100
	DefaultJacobiTolerance        = 0.01
	DefaultJacobiMaxIter          = 20
)

// SampleMatrix and SampleRHS describe the sample system
//
//	4x +  y +  z = 100
//	 x + 5y +  z =  90
//	 x +  y + 6z = 120
var (
	SampleMatrix = [][]float64{{4, 1, 1}, {1, 5, 1}, {1, 1, 6}}
	SampleRHS    = []float64{100, 90, 120}
)

// FalsePositionRequest describes a root-finding problem.
// Nil fields take defaults: A and B from the equation's bracket,
// Tolerance and MaxIterations from the package constants.
type FalsePositionRequest struct {
	Equation      string   `json:"equation" yaml:"equation" mapstructure:"equation"`
	A             *float64 `json:"a,omitempty" yaml:"a,omitempty" mapstructure:"a"`
	B             *float64 `json:"b,omitempty" yaml:"b,omitempty" mapstructure:"b"`
	Tolerance     *float64 `json:"tolerance,omitempty" yaml:"tolerance,omitempty" mapstructure:"tolerance"`
	MaxIterations *int     `json:"max_iterations,omitempty" yaml:"max_iterations,omitempty" mapstructure:"max_iterations"`
}

// JacobiRequest describes a linear system. Nil Matrix and RHS select the sample system.
type JacobiRequest struct {
	Matrix        [][]float64 `json:"matrix,omitempty" yaml:"matrix,omitempty" mapstructure:"matrix"`
	RHS           []float64   `json:"rhs,omitempty" yaml:"rhs,omitempty" mapstructure:"rhs"`
	Tolerance     *float64    `json:"tolerance,omitempty" yaml:"tolerance,omitempty" mapstructure:"tolerance"`
	MaxIterations *int        `json:"max_iterations,omitempty" yaml:"max_iterations,omitempty" mapstructure:"max_iterations"`
}

// Normalize returns a copy of r with Tolerance and MaxIterations filled in.
func (r JacobiRequest) Normalize() JacobiRequest {
	if r.Matrix == nil && r.RHS == nil {
		r.Matrix = cloneMatrix(SampleMatrix)
		r.RHS = append([]float64(nil), SampleRHS...)
	}
	if r.Tolerance == nil {
		r.Tolerance = Ptr(DefaultJacobiTolerance)
	}
	if r.MaxIterations == nil {
		r.MaxIterations = Ptr(DefaultJacobiMaxIter)
	}
	return r
}

// ValidateLimits checks the tolerance and iteration cap shared by every method.
func ValidateLimits(tol float64, maxIter int) error {
	if tol < 0 {
		return fmt.Errorf("%w: tolerance must be >= 0, got %g", ErrInvalidInput, tol)
	}
	if maxIter < 1 {
		return fmt.Errorf("%w: max iterations must be >= 1, got %d", ErrInvalidInput, maxIter)
	}
	return nil
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
