package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerHandler_TruncatesTime(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(&loggerHandler{handler: slog.NewJSONHandler(&buf, nil)})
	logger.Info("hello", "url", "https://example.com")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	ts, err := time.Parse(time.RFC3339Nano, record["time"].(string))
	require.NoError(t, err)

	assert.Equal(t, time.UTC, ts.Location())
	assert.Zero(t, ts.Nanosecond())
	assert.Equal(t, "https://example.com", record["url"])
}

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")

	SetLevel("warn")
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, Logger().Enabled(context.Background(), slog.LevelWarn))

	SetLevel("DEBUG")
	assert.True(t, Logger().Enabled(context.Background(), slog.LevelDebug))

	SetLevel("nonsense")
	assert.Equal(t, slog.LevelInfo, level.Level())
}
