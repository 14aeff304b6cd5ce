package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New("debug", "json")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))

	l, err = New("warn", "console")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))

	_, err = New("loud", "json")
	assert.Error(t, err)

	_, err = New("info", "xml")
	assert.Error(t, err)
}

func TestFromContext(t *testing.T) {
	fallback := zap.NewExample()
	scoped := zap.NewExample().With(zap.String("request_id", "abc"))

	assert.Same(t, fallback, FromContext(context.Background(), fallback))
	assert.Same(t, scoped, FromContext(WithContext(context.Background(), scoped), fallback))
	assert.NotNil(t, FromContext(context.Background(), nil))
}

func TestPanicLogger(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	p := &PanicLogger{Logger: zap.New(core)}

	p.LogPanic(context.Background(), "boom")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "graphql: panic occurred", entry.Message)
	assert.Equal(t, "boom", entry.ContextMap()["panic"])
}
