package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"shopkeep/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	_, err := parseLogLevel("verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")

	level, err := parseLogLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, "WARN", level.String())
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, "info", false)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shop opened", "customers", 4)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shop opened", line["msg"])
	assert.EqualValues(t, 4, line["customers"])
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := New(Params{Config: cfg})
	assert.Error(t, err)
}
