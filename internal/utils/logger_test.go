package utils

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newJSONLogger returns a JSON logger writing to buf
func newJSONLogger(buf *bytes.Buffer, level string) *Logger {
	return NewLogger(LoggerOptions{Level: level, Format: "json", Output: buf})
}

// decodeLine parses the single JSON log line in buf
func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestNewLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, "info")

	logger.Info().Int("rows", 3).Msg("Configuration table updated")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, AppName, entry["app"])
	assert.Equal(t, "Configuration table updated", entry["message"])
	assert.EqualValues(t, 3, entry["rows"])
	assert.Contains(t, entry, "time")
}

func TestNewLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerOptions{
		Level:   "info",
		Format:  "pretty",
		Output:  &buf,
		NoColor: true,
	})

	logger.Info().Str("document", "README.md").Msg("Generating configuration table")

	out := buf.String()
	assert.Contains(t, out, "Generating configuration table")
	assert.Contains(t, out, "document=README.md")
	assert.NotContains(t, out, "\x1b[")
}

func TestNewLogger_Verbose(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{"raises info to debug", "info", zerolog.DebugLevel},
		{"raises error to debug", "error", zerolog.DebugLevel},
		{"keeps trace", "trace", zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(LoggerOptions{Level: tt.level, Format: "json", Output: &bytes.Buffer{}, Verbose: true})

			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{" WARN ", zerolog.WarnLevel},
		{"disabled", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in))
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, "warn")

	logger.Debug().Msg("skipped debug")
	logger.Info().Msg("skipped info")
	logger.Warn().Msg("kept warn")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "kept warn")
}

func TestLogger_WithComponentAndFile(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf, "info").
		WithComponent("generator").
		WithFile("docs/README.md")

	logger.Info().Msg("Configuration table already up to date")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "generator", entry["component"])
	assert.Equal(t, "docs/README.md", entry["file"])
	assert.Equal(t, AppName, entry["app"])
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	require.NotNil(t, logger)

	assert.NotPanics(t, func() {
		logger.Info().Msg("dropped")
		logger.WithComponent("generator").WithFile("README.md").Debug().Msg("dropped")
	})
}
