package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fuzzscore/internal/config"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}

func TestNew_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.LogLevel = "warn"

	logger, err := New(&buf, cfg)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "variable", "age")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "variable=age")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.LogFormat = config.FormatJSON

	logger, err := New(&buf, cfg)
	require.NoError(t, err)
	logger.Info("evaluated", "score", 25.0)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "evaluated", rec["msg"])
	assert.Equal(t, 25.0, rec["score"])
}

func TestNew_BadLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogLevel = "loud"
	_, err := New(&bytes.Buffer{}, cfg)
	assert.Error(t, err)
}
