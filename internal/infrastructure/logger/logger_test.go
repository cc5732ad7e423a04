package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestSetupJSON(t *testing.T) {
	previous := log.Logger
	t.Cleanup(func() { log.Logger = previous })

	var buf bytes.Buffer
	Setup("info", "json", &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("quote_id", "q-1").Msg("quote saved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "quote saved", entry["message"])
	assert.Equal(t, "q-1", entry["quote_id"])
	assert.Equal(t, "mecanica-rff", entry["service"])
}
