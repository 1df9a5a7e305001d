package tui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainRenderer(t *testing.T) {
	out, err := PlainRenderer("# Title")
	require.NoError(t, err)
	assert.Equal(t, "# Title", out)
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer(80)
	out, err := render("| a | b |\n| --- | --- |\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "2")
}

func TestPrintBanner(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	PrintBanner(&buf, "0.1.0\n")
	assert.Contains(t, buf.String(), "v0.1.0")
	assert.Contains(t, buf.String(), "|_|\\__\\___|")
}

func TestStatusAndError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.Contains(t, Status(domain.StatusConverged), "converged")
	assert.Contains(t, Status(domain.StatusMaxIterations), "max iterations")
	assert.Contains(t, Error(errors.New("division by zero")), "Error: division by zero")
}
