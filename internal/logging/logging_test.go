package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_VerboseWritesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Verbose: true, Writer: &buf})

	log.Debug("converted", zap.String("unit", "minutes"))

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "converted")
	assert.Contains(t, out, `"unit": "minutes"`)
}

func TestNew_QuietDropsBelowWarn(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Writer: &buf})

	log.Debug("debug")
	log.Info("info")
	assert.Empty(t, buf.String())

	log.Warn("clock skew", zap.Float64("seconds", 1.5))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "clock skew", entry["message"])
	assert.Equal(t, 1.5, entry["seconds"])
	assert.Contains(t, entry, "timestamp")
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.NotPanics(t, func() { log.Error("ignored") })
}
