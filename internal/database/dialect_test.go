package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFor(t *testing.T) {
	d, err := DialectFor("MySQL")
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	d, err = DialectFor("postgresql")
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	_, err = DialectFor("sqlite3")
	assert.Error(t, err)
}

func TestDialectQuoting(t *testing.T) {
	assert.Equal(t, "`growthRate`", MySQL.Quote("growthRate"))
	assert.Equal(t, "`a``b`", MySQL.Quote("a`b"))
	assert.Equal(t, `"Urban"`, Postgres.Quote("Urban"))
	assert.Equal(t, `"a""b"`, Postgres.Quote(`a"b`))
}

func TestDialectPlaceholders(t *testing.T) {
	assert.Equal(t, "?", MySQL.Placeholder(3))
	assert.Equal(t, "$3", Postgres.Placeholder(3))
	assert.False(t, MySQL.ReturnsInsertID())
	assert.True(t, Postgres.ReturnsInsertID())
}
