package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nucleus/village-api/internal/config"
)

type fakeMigrator struct {
	calls   []string
	version uint
	dirty   bool
	err     error
}

func (m *fakeMigrator) Up() error {
	m.calls = append(m.calls, "up")
	return m.err
}

func (m *fakeMigrator) Down() error {
	m.calls = append(m.calls, "down")
	return m.err
}

func (m *fakeMigrator) Version() (uint, bool, error) {
	m.calls = append(m.calls, "version")
	return m.version, m.dirty, nil
}

func TestRunRejectsUnknownCommandBeforeConnecting(t *testing.T) {
	cfg := &config.Config{DBDriver: "mysql", DBHost: "unreachable.invalid"}

	err := run(context.Background(), cfg, "sideways", zap.NewNop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "sideways"`)
}

func TestApply(t *testing.T) {
	tests := []struct {
		cmd       string
		wantCalls []string
	}{
		{cmd: "up", wantCalls: []string{"up", "version"}},
		{cmd: "down", wantCalls: []string{"down", "version"}},
		{cmd: "version", wantCalls: []string{"version"}},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)
			m := &fakeMigrator{version: 1}

			require.NoError(t, apply(m, tt.cmd, zap.New(core)))
			assert.Equal(t, tt.wantCalls, m.calls)

			entries := logs.FilterMessage("schema version").All()
			require.Len(t, entries, 1)
			assert.Equal(t, uint64(1), entries[0].ContextMap()["version"])
			assert.Equal(t, false, entries[0].ContextMap()["dirty"])
		})
	}
}

func TestApplyUnknownCommand(t *testing.T) {
	m := &fakeMigrator{}

	err := apply(m, "sideways", zap.NewNop())

	require.Error(t, err)
	assert.Empty(t, m.calls)
}

func TestApplyMigrationError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := &fakeMigrator{err: errors.New("migration failed: dirty database")}

	err := apply(m, "up", zap.New(core))

	assert.EqualError(t, err, "migration failed: dirty database")
	assert.Equal(t, []string{"up"}, m.calls)
	assert.Zero(t, logs.Len())
}
