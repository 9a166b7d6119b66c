package logging

import (
	"bytes"
	"testing"

	"github.com/go-kit/kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, FormatLogfmt, LevelInfo)
	require.NoError(t, err)

	level.Debug(logger).Log("message", "hidden")
	level.Info(logger).Log("message", "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "message=shown")
	assert.Contains(t, buf.String(), "time=")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, FormatJSON, LevelDebug)
	require.NoError(t, err)

	level.Debug(logger).Log("message", "fetching", "url", "https://x/items")
	assert.Contains(t, buf.String(), `"message":"fetching"`)
	assert.Contains(t, buf.String(), `"level":"debug"`)
}

func TestNewDiscard(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, FormatDiscard, LevelDebug)
	require.NoError(t, err)
	level.Error(logger).Log("message", "dropped")
	assert.Empty(t, buf.String())
}

func TestNewInvalid(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "xml", LevelInfo)
	require.Error(t, err)

	_, err = New(&bytes.Buffer{}, FormatLogfmt, "trace")
	require.Error(t, err)
}
