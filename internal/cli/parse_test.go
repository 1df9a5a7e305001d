package cli

import (
	"testing"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatrix(t *testing.T) {
	m, err := ParseMatrix("4,1,1; 1,5,1 ;1 1 6")
	require.NoError(t, err)
	assert.Equal(t, domain.SampleMatrix, m)

	m, err = ParseMatrix("2;")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2}}, m)
}

func TestParseMatrix_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"only separators", ";;"},
		{"not a number", "1,x;2,3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMatrix(tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestParseVector(t *testing.T) {
	v, err := ParseVector("100, 90,120")
	require.NoError(t, err)
	assert.Equal(t, domain.SampleRHS, v)

	v, err = ParseVector("-1.5e2 3")
	require.NoError(t, err)
	assert.Equal(t, []float64{-150, 3}, v)

	_, err = ParseVector("  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
