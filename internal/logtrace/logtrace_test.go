package logtrace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteIncludesFieldsAndCorrelationID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	ctx := CtxWithCorrelationID(context.Background(), "abc")
	Info(ctx, "encoded", Fields{FieldCapacity: 64, FieldUsed: 32})
	Debug(ctx, "dropped below level", nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "encoded", entries[0].Message)

	ctxMap := entries[0].ContextMap()
	assert.Equal(t, "abc", ctxMap[FieldCorrelationID])
	assert.EqualValues(t, 64, ctxMap[FieldCapacity])
	assert.EqualValues(t, 32, ctxMap[FieldUsed])
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Setup("chatty"))
	require.NoError(t, Setup("warn"))
	t.Cleanup(func() { SetLogger(nil) })

	assert.True(t, Enabled(zapcore.WarnLevel))
	assert.False(t, Enabled(zapcore.InfoLevel))
}

func TestWithFields(t *testing.T) {
	base := Fields{"a": 1}
	merged := WithFields(base, Fields{"b": 2})
	assert.Equal(t, Fields{"a": 1, "b": 2}, merged)
	assert.Len(t, base, 1)
}
