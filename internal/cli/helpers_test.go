package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, HandleExecutionError(nil))
	assert.NoError(t, HandleExecutionError(io.EOF))
	assert.NoError(t, HandleExecutionError(fmt.Errorf("read: %w", context.Canceled)))

	boom := errors.New("boom")
	assert.Equal(t, boom, HandleExecutionError(boom))
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.Enabled(context.Background(), -4))

	logger, err = NewLogger("warn", true)
	require.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), -4), "debug overrides the level")

	_, err = NewLogger("loud", false)
	assert.Error(t, err)
}

func TestTerminalDetection(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.Equal(t, 0, TerminalWidth(f))
}

func TestSignalContext_CancelledElsewhere(t *testing.T) {
	sc := NewSignalContext(context.Background())
	sc.Cancel()
	<-sc.Done()
	assert.Nil(t, sc.Signal())
}
