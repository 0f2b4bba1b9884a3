package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagenav/internal/logging"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{Level: "debug", Format: logging.FormatJSON, Writer: &buf})
	logger = logging.ComponentLogger(logger, "series")

	ctx := logging.ContextWithTraceID(context.Background(), "01J0000000000000000000TEST")
	logger.Debug().Ctx(ctx).Int("pages", 6).Msg("built")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "series", entry["component"])
	assert.Equal(t, "01J0000000000000000000TEST", entry[logging.TraceIDField])
	assert.InDelta(t, 6, entry["pages"], 0)
	assert.Equal(t, "built", entry["message"])
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{Level: "warn", Format: logging.FormatJSON, Writer: &buf})

	logger.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, logging.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logging.ParseLevel("loud"))
	assert.Equal(t, zerolog.ErrorLevel, logging.ParseLevel("error"))
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagenav.log")
	result := logging.NewLoggerWithPath(logging.Config{Output: logging.OutputFile, File: path})
	t.Cleanup(func() { _ = result.Close() })

	require.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Info().Msg("to file")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to file"`)
}

func TestNewLoggerWithPath_Fallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "pagenav.log")
	result := logging.NewLoggerWithPath(logging.Config{Output: logging.OutputFile, File: path})

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.Contains(t, result.FallbackReason, path)
	assert.NoError(t, result.Close())

	var buf bytes.Buffer
	logging.PrintFallbackWarning(&buf, result.FallbackReason)
	assert.Contains(t, buf.String(), "logging to stderr")
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, logging.TraceIDFromContext(ctx))

	id := logging.GetOrGenerateTraceID(ctx)
	_, err := ulid.Parse(id)
	require.NoError(t, err)

	ctx = logging.ContextWithTraceID(ctx, id)
	assert.Equal(t, id, logging.GetOrGenerateTraceID(ctx))
	assert.NotEqual(t, id, logging.GenerateTraceID())
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{Format: logging.FormatJSON, Writer: &buf})
	ctx := logger.WithContext(context.Background())

	logging.FromContext(ctx).Info().Msg("via context")
	assert.Contains(t, buf.String(), "via context")

	assert.Equal(t, zerolog.Disabled, logging.FromContext(context.Background()).GetLevel())
}
