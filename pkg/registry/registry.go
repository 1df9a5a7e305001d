package registry

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/solver"
)

// Equation is a named scalar function with a suggested starting bracket.
type Equation struct {
	Name        string      `json:"name"`
	Expression  string      `json:"expression"`
	Description string      `json:"description,omitempty"`
	Bracket     [2]float64  `json:"bracket"`
	Func        solver.Func `json:"-"`

	// Revision counts registrations under Name, starting at 1. It is set by
	// Register and changes whenever the name is bound to a new function.
	Revision int `json:"revision"`
}

// Registry manages the available equations.
type Registry struct {
	mu        sync.RWMutex
	equations map[string]Equation
	revisions map[string]int
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		equations: make(map[string]Equation),
		revisions: make(map[string]int),
	}
}

// Register adds an equation to the registry.
// If an equation with the same name exists, it is overwritten and the
// revision is bumped, so results cached for the old function are not reused.
func (r *Registry) Register(eq Equation) error {
	if eq.Name == "" {
		return fmt.Errorf("%w: equation name is required", domain.ErrInvalidInput)
	}
	if eq.Func == nil {
		return fmt.Errorf("%w: equation %q has no function", domain.ErrInvalidInput, eq.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.revisions[eq.Name]++
	eq.Revision = r.revisions[eq.Name]
	r.equations[eq.Name] = eq
	return nil
}

// Lookup returns the equation registered under name.
func (r *Registry) Lookup(name string) (Equation, error) {
	r.mu.RLock()
	eq, ok := r.equations[name]
	r.mu.RUnlock()

	if !ok {
		return Equation{}, fmt.Errorf("%w: %s", domain.ErrUnknownEquation, name)
	}
	return eq, nil
}

// List returns all registered equations sorted by name.
func (r *Registry) List() []Equation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Equation, 0, len(r.equations))
	for _, eq := range r.equations {
		list = append(list, eq)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// DefaultEquation is used when a request names no equation.
const DefaultEquation = "cubic"

// Builtin returns the equations shipped with iterlab.
func Builtin() []Equation {
	return []Equation{
		{
			Name:        "cubic",
			Expression:  "x^3 - x - 2",
			Description: "Single real root near 1.52138",
			Bracket:     [2]float64{1, 2},
			Func:        func(x float64) float64 { return x*x*x - x - 2 },
		},
		{
			Name:        "cubic-alt",
			Expression:  "x^3 - 2x + 1",
			Description: "Roots at 1 and (-1 ± √5)/2; the bracket [1, 3] hits x = 1 exactly",
			Bracket:     [2]float64{1, 3},
			Func:        func(x float64) float64 { return x*x*x - 2*x + 1 },
		},
		{
			Name:        "cosine",
			Expression:  "cos(x) - x",
			Description: "Dottie number, about 0.739085",
			Bracket:     [2]float64{0, 1},
			Func:        func(x float64) float64 { return math.Cos(x) - x },
		},
		{
			Name:        "exp-decay",
			Expression:  "e^-x - x",
			Description: "Omega constant, about 0.567143",
			Bracket:     [2]float64{0, 1},
			Func:        func(x float64) float64 { return math.Exp(-x) - x },
		},
	}
}

// Default returns a registry preloaded with the builtin equations.
func Default() *Registry {
	r := NewRegistry()
	for _, eq := range Builtin() {
		// Builtins always carry a name and a function.
		_ = r.Register(eq)
	}
	return r
}
