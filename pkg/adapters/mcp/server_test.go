package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/iterlab"
	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return NewServer(iterlab.New(), nil)
}

func TestHandleFalsePosition(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleFalsePosition(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"equation":       "cubic",
		"a":              1.0,
		"b":              2.0,
		"max_iterations": 100.0,
		"chart":          true,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.521380, resp.Result.Root, 1e-5)
	assert.Equal(t, domain.StatusConverged, resp.Result.Status)
	assert.Contains(t, resp.Table, "| Iteration | a | b | c | f(a) | f(b) | f(c) |")
	assert.Contains(t, resp.Table, "**Root:** 1.521380")
	assert.Contains(t, resp.Chart, "xychart-beta")
}

func TestHandleFalsePosition_Errors(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	_, err := s.handleFalsePosition(ctx, mcp.CallToolRequest{}, map[string]interface{}{"equation": "quartic"})
	assert.ErrorIs(t, err, domain.ErrUnknownEquation)

	_, err = s.handleFalsePosition(ctx, mcp.CallToolRequest{}, map[string]interface{}{"a": 2.0, "b": 2.0})
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)

	_, err = s.handleFalsePosition(ctx, mcp.CallToolRequest{}, map[string]interface{}{"node_id": "start"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHandleJacobi(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleJacobi(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Result.Iterations())
	require.Len(t, resp.Exact, 3)
	assert.Contains(t, resp.Table, "| Iteration | x | y | z | Max Change |")
	assert.Empty(t, resp.Chart)

	// Arguments arrive as decoded JSON.
	var args map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(`{"matrix":[[4,1],[1,3]],"rhs":[1,2],"tolerance":1e-9,"max_iterations":60}`), &args))
	resp, err = s.handleJacobi(context.Background(), mcp.CallToolRequest{}, args)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConverged, resp.Result.Status)
	assert.InDelta(t, 1.0/11, resp.Result.X[0], 1e-8)
	assert.InDelta(t, 7.0/11, resp.Result.X[1], 1e-8)
}

func TestHandleJacobi_ZeroDiagonal(t *testing.T) {
	s := newTestServer()
	_, err := s.handleJacobi(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"matrix": []interface{}{[]interface{}{0.0}},
		"rhs":    []interface{}{1.0},
	})
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
}

func TestPopBool(t *testing.T) {
	args := map[string]interface{}{"chart": true, "a": 1.0}
	assert.True(t, popBool(args, "chart"))
	assert.NotContains(t, args, "chart")
	assert.False(t, popBool(args, "chart"))

	args["chart"] = "yes"
	assert.False(t, popBool(args, "chart"), "non-boolean flags are ignored")
}

func TestNewServer(t *testing.T) {
	s := newTestServer()
	require.NotNil(t, s.mcpServer)
	assert.NotNil(t, s.logger, "nil logger falls back to a discarding one")
}

func TestEquationsJSON(t *testing.T) {
	data, err := json.Marshal(iterlab.New().Equations())
	require.NoError(t, err)

	var eqs []registry.Equation
	require.NoError(t, json.Unmarshal(data, &eqs))
	assert.Len(t, eqs, len(registry.Builtin()))
}
