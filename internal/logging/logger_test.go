package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/bnema/dynpanels/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(in), in)
	}
}

func TestContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "manager")
	ctx = logging.WithCanvasID(ctx, "main")

	logging.FromContext(ctx).Debug().Msg("anchored")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "manager", line["component"])
	assert.Equal(t, "main", line["canvas_id"])
	assert.Equal(t, "anchored", line["message"])
}

func TestFromContext_NoLogger(t *testing.T) {
	log := logging.FromContext(context.Background())

	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Info().Msg("dropped") })
}
