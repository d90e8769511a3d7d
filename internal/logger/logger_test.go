package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: "forgeworks-test",
		Version:     "1.0.0",
		Environment: EnvironmentTest,
	}, &buf)

	Info("price computed", "item", "Iron Ingot", "price", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "forgeworks-test", entry[AttrKeyService])
	assert.Equal(t, "1.0.0", entry[AttrKeyVersion])
	assert.Equal(t, EnvironmentTest, entry[AttrKeyEnvironment])
	assert.Equal(t, "price computed", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Iron Ingot", entry["item"])
	assert.Equal(t, float64(42), entry["price"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: LogLevelWarn, Format: LogFormatText}, &buf)

	slog.Info("dropped")
	slog.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestRequestIDContext(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: LogLevelDebug, Format: LogFormatJSON}, &buf)

	ctx := WithRequestID(context.Background(), "test-req-123")
	assert.Equal(t, "test-req-123", GetRequestID(ctx))

	FromContext(ctx).Info("with id")
	assert.True(t, strings.Contains(buf.String(), `"request_id":"test-req-123"`))

	assert.Empty(t, GetRequestID(context.Background()))
	assert.NotNil(t, FromContext(context.Background()))
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestConfigLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, Config{Level: tt.level}.LogLevel())
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, DefaultServiceName, config.ServiceName)
	assert.NotEmpty(t, config.Level)
	assert.NotEmpty(t, config.Format)
}

func TestProductionConfig(t *testing.T) {
	config := ProductionConfig()
	assert.True(t, config.IsJSON())
	assert.Equal(t, LogLevelInfo, config.Level)
	assert.Equal(t, EnvironmentProduction, config.Environment)
	assert.False(t, config.AddSource, "production logs omit source locations")
}

func TestDevelopmentConfig(t *testing.T) {
	config := DevelopmentConfig()
	assert.False(t, config.IsJSON())
	assert.Equal(t, LogLevelDebug, config.Level)
	assert.True(t, config.AddSource)
}
