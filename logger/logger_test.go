package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerRedactsAndOrdersFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerFrom(zap.New(core))

	log.Warn("minfraud warning", map[string]any{
		"license_key": "abcd1234",
		"code":        "COUNTRY_NOT_FOUND",
		"error":       errors.New("boom"),
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "minfraud warning", entry.Message)
	assert.Equal(t, "minfraud", entry.LoggerName)

	ctx := entry.ContextMap()
	assert.Equal(t, "[REDACTED]", ctx["license_key"])
	assert.Equal(t, "COUNTRY_NOT_FOUND", ctx["code"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("loud"))
}

func TestNewZapLogger(t *testing.T) {
	log, err := NewZapLogger("error")
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestRedactDoesNotMutate(t *testing.T) {
	in := map[string]any{"email": "a@b.c", "ip": "1.2.3.4"}
	out := Redact(in)
	assert.Equal(t, "a@b.c", in["email"])
	assert.Equal(t, "[REDACTED]", out["email"])
	assert.Equal(t, "1.2.3.4", out["ip"])

	NoopLogger{}.Info("ignored", in)
}
