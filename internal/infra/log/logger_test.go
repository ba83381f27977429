package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"autobid/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(pretty bool, level string) *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "autobid-admin"
	cfg.Env.Log.Pretty = pretty
	cfg.Env.Log.Level = level

	return cfg
}

func TestNewWithWriter_JSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(newConfig(false, "info"), &buf)
	require.NoError(t, err)

	logger.Info("listing deleted", slog.String("scope", "single"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "listing deleted", line["msg"])
	assert.Equal(t, "single", line["scope"])
	assert.Equal(t, "autobid-admin", line["service"])
}

func TestNewWithWriter_PrettyHasNoColorOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(newConfig(true, "debug"), &buf)
	require.NoError(t, err)

	logger.Debug("import row", slog.String("barangay", "Poblacion"))

	out := buf.String()
	assert.Contains(t, out, "import row")
	assert.Contains(t, out, "barangay=Poblacion")
	assert.NotContains(t, out, "\x1b[")
}

func TestNewWithWriter_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(newConfig(false, "warn"), &buf)
	require.NoError(t, err)

	logger.Info("ignored")
	assert.Empty(t, buf.String())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
