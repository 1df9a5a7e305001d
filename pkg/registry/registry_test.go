package registry_test

import (
	"testing"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/registry"
	"github.com/aretw0/iterlab/pkg/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterLookup(t *testing.T) {
	r := registry.NewRegistry()

	err := r.Register(registry.Equation{Name: "line", Expression: "x - 1", Func: func(x float64) float64 { return x - 1 }})
	require.NoError(t, err)

	eq, err := r.Lookup("line")
	require.NoError(t, err)
	assert.Equal(t, "x - 1", eq.Expression)
	assert.Equal(t, 0.0, eq.Func(1))

	_, err = r.Lookup("missing")
	assert.ErrorIs(t, err, domain.ErrUnknownEquation)
}

func TestRegistry_ReRegisterBumpsRevision(t *testing.T) {
	r := registry.NewRegistry()
	require.NoError(t, r.Register(registry.Equation{Name: "g", Func: func(x float64) float64 { return x - 1 }}))
	require.NoError(t, r.Register(registry.Equation{Name: "h", Func: func(x float64) float64 { return x }}))

	first, err := r.Lookup("g")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Revision)

	require.NoError(t, r.Register(registry.Equation{Name: "g", Func: func(x float64) float64 { return x - 2 }}))
	second, err := r.Lookup("g")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Revision)
	assert.Equal(t, 0.0, second.Func(2))

	other, err := r.Lookup("h")
	require.NoError(t, err)
	assert.Equal(t, 1, other.Revision, "revisions are tracked per name")
}

func TestRegistry_RegisterRejectsIncomplete(t *testing.T) {
	r := registry.NewRegistry()

	assert.ErrorIs(t, r.Register(registry.Equation{Func: func(float64) float64 { return 0 }}), domain.ErrInvalidInput)
	assert.ErrorIs(t, r.Register(registry.Equation{Name: "nofunc"}), domain.ErrInvalidInput)
}

func TestRegistry_ListSorted(t *testing.T) {
	r := registry.Default()

	names := []string{}
	for _, eq := range r.List() {
		names = append(names, eq.Name)
	}
	assert.Equal(t, []string{"cosine", "cubic", "cubic-alt", "exp-decay"}, names)
}

func TestBuiltin_BracketsConverge(t *testing.T) {
	for _, eq := range registry.Builtin() {
		t.Run(eq.Name, func(t *testing.T) {
			res, err := solver.FalsePosition(eq.Func, eq.Bracket[0], eq.Bracket[1], 1e-8, 200)
			require.NoError(t, err)
			assert.Equal(t, domain.StatusConverged, res.Status)
		})
	}
}
