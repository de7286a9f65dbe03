package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Debug("parsed latitude", "degrees", 42)
	assert.Empty(t, buf.String())

	logger.Warn("config ignored", "key", "colour")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), `msg="config ignored"`)
	assert.Contains(t, buf.String(), "key=colour")
}
