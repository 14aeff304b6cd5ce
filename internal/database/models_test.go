package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullFlagScan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want NullFlag
	}{
		{name: "null", src: nil, want: NullFlag{}},
		{name: "bool", src: true, want: NullFlag{Bool: true, Valid: true}},
		{name: "zero", src: int64(0), want: NullFlag{Valid: true}},
		{name: "one", src: int64(1), want: NullFlag{Bool: true, Valid: true}},
		{name: "two", src: int64(2), want: NullFlag{Bool: true, Valid: true}},
		{name: "negative", src: int64(-1), want: NullFlag{Bool: true, Valid: true}},
		{name: "int", src: 7, want: NullFlag{Bool: true, Valid: true}},
		{name: "mysql text", src: []byte("2"), want: NullFlag{Bool: true, Valid: true}},
		{name: "mysql text zero", src: []byte("0"), want: NullFlag{Valid: true}},
		{name: "postgres text", src: "f", want: NullFlag{Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NullFlag{Bool: true, Valid: true}
			require.NoError(t, f.Scan(tt.src))
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestNullFlagScanRejectsGarbage(t *testing.T) {
	var f NullFlag
	assert.Error(t, f.Scan([]byte("maybe")))
	assert.False(t, f.Valid)

	assert.Error(t, f.Scan(3.5))
}

func TestNullFlagValue(t *testing.T) {
	v, err := NullFlag{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = NullFlag{Bool: true, Valid: true}.Value()
	require.NoError(t, err)
	assert.Equal(t, true, v)
}
