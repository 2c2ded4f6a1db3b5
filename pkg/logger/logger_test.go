package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New("debug", "console")
	require.NoError(t, err)
	assert.NotNil(t, l.Logger)

	_, err = New("loud", "json")
	assert.Error(t, err)
}

func TestContextHelpersWithoutSpan(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &Logger{Logger: zap.New(core)}

	l.InfoContext(context.Background(), "fetched", IntField("count", 3))
	l.ErrorContext(context.Background(), "failed", ErrorField(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(3), entries[0].ContextMap()["count"])
	assert.NotContains(t, entries[0].ContextMap(), "trace_id")
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}
