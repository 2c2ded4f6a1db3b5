package utils

import (
	"testing"
	"time"

	"golang-stock-sentiment/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSafeCall(t *testing.T) {
	err := SafeCall(func() { panic("boom") })
	assert.ErrorContains(t, err, "boom")
	assert.ErrorContains(t, err, "goroutine")
	assert.NoError(t, SafeCall(func() {}))
}

func TestGoSafeLogsPanicThroughLogger(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	log := &logger.Logger{Logger: zap.New(core)}

	GoSafe(log, func() { panic("worker exploded") })

	require.Eventually(t, func() bool { return logs.Len() == 1 }, time.Second, 10*time.Millisecond)
	entry := logs.All()[0]
	assert.Equal(t, "Goroutine panicked", entry.Message)
	assert.Contains(t, entry.ContextMap()["error"], "worker exploded")
}
