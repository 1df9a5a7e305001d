package domain

import "time"

// RootResult is the outcome of a False Position solve.
type RootResult struct {
	Equation string              `json:"equation,omitempty"`
	Root     float64             `json:"root"`
	Status   Status              `json:"status"`
	Trace    []FalsePositionStep `json:"trace"`
}

// Iterations returns the number of loop passes performed.
func (r *RootResult) Iterations() int {
	return len(r.Trace)
}

// LinearResult is the outcome of a Jacobi solve.
type LinearResult struct {
	X      []float64    `json:"x"`
	Status Status       `json:"status"`
	Trace  []JacobiStep `json:"trace"`

	// Residual is b - Ax for the returned X.
	Residual []float64 `json:"residual"`

	// DiagonallyDominant reports strict row diagonal dominance of A.
	// Jacobi is guaranteed to converge when true; it is never enforced.
	DiagonallyDominant bool `json:"diagonally_dominant"`
}

// Iterations returns the number of loop passes performed.
func (r *LinearResult) Iterations() int {
	return len(r.Trace)
}

// Record is a stored solve outcome. Exactly one of Root and Linear is set.
type Record struct {
	Key       string        `json:"key"`
	Method    Method        `json:"method"`
	CreatedAt time.Time     `json:"created_at"`
	Root      *RootResult   `json:"root,omitempty"`
	Linear    *LinearResult `json:"linear,omitempty"`
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := *r
	if r.Root != nil {
		root := *r.Root
		root.Trace = append([]FalsePositionStep(nil), r.Root.Trace...)
		out.Root = &root
	}
	if r.Linear != nil {
		lin := *r.Linear
		lin.X = append([]float64(nil), r.Linear.X...)
		lin.Residual = append([]float64(nil), r.Linear.Residual...)
		lin.Trace = make([]JacobiStep, len(r.Linear.Trace))
		for i, step := range r.Linear.Trace {
			step.X = append([]float64(nil), step.X...)
			lin.Trace[i] = step
		}
		out.Linear = &lin
	}
	return &out
}
