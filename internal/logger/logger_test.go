package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Init(Config{Level: "loud"}))
	assert.NoError(t, Init(Config{Level: "debug", Output: "stderr"}))
	assert.Equal(t, zerolog.DebugLevel, GetLogger().GetLevel())
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.InfoLevel)

	log.Debug().Msg("hidden")
	log.Info().Str("component", "sampler").Msg("tick")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "tick", entry["message"])
	assert.Equal(t, "sampler", entry["component"])
	assert.Equal(t, "info", entry["level"])
}
