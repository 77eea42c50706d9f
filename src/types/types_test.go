package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeEqual(t *testing.T) {
	t.Parallel()
	cases := []struct {
		a, b  Type
		match bool
	}{
		{Int, Int, true},
		{Real, Real, true},
		{Bool, Bool, true},
		{Int, Real, false},
		{Real, Bool, false},
		{Int, &Simple{Name: NameInt}, true},
		{Int, &Matrix{Rows: 1, Cols: 1}, false},
		{&Matrix{Rows: 2, Cols: 3}, &Matrix{Rows: 2, Cols: 3}, true},
		{&Matrix{Rows: 2, Cols: 3}, &Matrix{Rows: 3, Cols: 2}, false},
		{&Interval{Low: 1, High: 2, IncludesLow: true}, &Interval{Low: 1, High: 2, IncludesLow: true}, true},
		{&Interval{Low: 1, High: 2, IncludesLow: true}, &Interval{Low: 1, High: 2}, false},
		{&Interval{Low: 1, High: 2}, Real, false},
		{nil, nil, true},
		{nil, Int, false},
		{Int, nil, false},
	}

	for i, tc := range cases {
		assert.Equal(t, tc.match, Equal(tc.a, tc.b), "[%v] %v does not match %v", i, tc.a, tc.b)
	}
}

func TestEqualAll(t *testing.T) {
	t.Parallel()
	assert.True(t, EqualAll(nil, []Type{}))
	assert.True(t, EqualAll([]Type{Int, Real}, []Type{Int, Real}))
	assert.False(t, EqualAll([]Type{Int, Real}, []Type{Real, Int}))
	assert.False(t, EqualAll([]Type{Int}, []Type{Int, Int}))
}

func TestTypeString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		defn     Type
		expected string
	}{
		{Int, NameInt},
		{Real, NameReal},
		{Bool, NameBool},
		{&Matrix{Rows: 1, Cols: 4}, "Matrix(1, 4)"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, tc.defn.String())
	}
	assert.Equal(t, "(bool, real)", Format([]Type{Bool, Real}))
	assert.Equal(t, "()", Format(nil))
	assert.Equal(t, "(<nil>)", Format([]Type{nil}))
}

func TestByName(t *testing.T) {
	t.Parallel()
	defn, ok := ByName("real")
	require.True(t, ok)
	assert.Same(t, Real, defn)
	_, ok = ByName("number")
	assert.False(t, ok)
}
