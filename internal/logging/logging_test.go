package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level slog.Level
		ok    bool
	}{
		{name: "debug", level: slog.LevelDebug, ok: true},
		{name: "INFO", level: slog.LevelInfo, ok: true},
		{name: "", level: slog.LevelInfo, ok: true},
		{name: "warn", level: slog.LevelWarn, ok: true},
		{name: " error ", level: slog.LevelError, ok: true},
		{name: "loud", level: slog.LevelInfo, ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			level, ok := ParseLevel(tc.name)
			assert.Equal(t, tc.level, level)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown", "pool", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "pool=3")
}

func TestNewUnknownLevelWarns(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, "loud")
	logger.Info("after")

	out := buf.String()
	assert.Contains(t, out, "invalid log level configured")
	assert.Contains(t, out, "configured_level=loud")
	assert.True(t, strings.Contains(out, "after"))
}
