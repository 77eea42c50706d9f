package parse

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/exprcheck/src/ast"
	"github.com/tanema/exprcheck/src/lerrors"
	"github.com/tanema/exprcheck/src/types"
)

func TestParser_Expressions(t *testing.T) {
	t.Parallel()
	cases := []struct {
		src      string
		expected string
	}{
		{src: "2", expected: "2"},
		{src: "0.0", expected: "0.0"},
		{src: "x", expected: "x"},
		{src: "2 + 2", expected: "add(2, 2)"},
		{src: "1 - 2 - 3", expected: "sub(sub(1, 2), 3)"},
		{src: "x + y * z", expected: "add(x, mul(y, z))"},
		{src: "(x + y) / z", expected: "truediv(add(x, y), z)"},
		{src: "x + A y", expected: "add(x, mul(A, y))"},
		{src: "A B C", expected: "mul(mul(A, B), C)"},
		{src: "2 (x + 1)", expected: "mul(2, add(x, 1))"},
		{src: "-2", expected: "-2"},
		{src: "-2.5 * x", expected: "mul(-2.5, x)"},
		{src: "-x * y", expected: "mul(neg(x), y)"},
		{src: "x - -y", expected: "sub(x, neg(y))"},
		{src: "not x > 0.0 and 2 + 2", expected: "and(not(gt(x, 0.0)), add(2, 2))"},
		{src: "a or b and c", expected: "or(a, and(b, c))"},
		{src: "x == y != z", expected: "ne(eq(x, y), z)"},
		{src: "x <= 1 or x >= 2", expected: "or(le(x, 1), ge(x, 2))"},
		{src: "x < y ~= (y > x)", expected: "ne(lt(x, y), gt(y, x))"},
		{src: "z / (x + y) # ratio", expected: "truediv(z, add(x, y))"},
	}
	for _, tc := range cases {
		node, err := String(tc.src)
		require.NoError(t, err, tc.src)
		assert.Equal(t, tc.expected, node.String(), tc.src)
	}
}

func TestParser_Positions(t *testing.T) {
	t.Parallel()
	node, err := String("x +\n  A y")
	require.NoError(t, err)
	call, ok := node.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, ast.LineInfo{Line: 1, Column: 3}, call.Pos())
	assert.Equal(t, ast.LineInfo{Line: 1, Column: 1}, call.Args[0].Pos())
	mul, ok := call.Args[1].(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, mul.Op)
	assert.Equal(t, ast.LineInfo{Line: 2, Column: 5}, mul.Pos())
	assert.Equal(t, ast.LineInfo{Line: 2, Column: 3}, mul.Args[0].Pos())
}

func TestParser_Literals(t *testing.T) {
	t.Parallel()
	node, err := String("-2")
	require.NoError(t, err)
	assert.Equal(t, &ast.Literal{LineInfo: ast.LineInfo{Line: 1, Column: 1}, Kind: ast.LitInt, Int: -2}, node)

	node, err = String("2.0")
	require.NoError(t, err)
	assert.Equal(t, &ast.Literal{LineInfo: ast.LineInfo{Line: 1, Column: 1}, Kind: ast.LitReal, Float: 2}, node)
}

func TestParser_Incomplete(t *testing.T) {
	t.Parallel()
	for _, src := range []string{"", "  # nothing", "2 +", "(2", "not", "x and (y or"} {
		_, err := String(src)
		assert.ErrorIs(t, err, io.EOF, src)
	}
}

func TestParser_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		src  string
		kind lerrors.ErrorKind
		line int64
		col  int64
	}{
		{src: "2 + )", kind: lerrors.ParserErr, line: 1, col: 5},
		{src: "(x + y))", kind: lerrors.ParserErr, line: 1, col: 8},
		{src: "x, y", kind: lerrors.ParserErr, line: 1, col: 2},
		{src: "[x]", kind: lerrors.ParserErr, line: 1, col: 1},
		{src: "x $ y", kind: lerrors.LexerErr, line: 1, col: 3},
	}
	for _, tc := range cases {
		_, err := String(tc.src)
		var exErr *lerrors.Error
		require.True(t, errors.As(err, &exErr), tc.src)
		assert.Equal(t, tc.kind, exErr.Kind, tc.src)
		assert.Equal(t, tc.line, exErr.Line, tc.src)
		assert.Equal(t, tc.col, exErr.Column, tc.src)
		assert.NotErrorIs(t, err, io.EOF, tc.src)
	}
}

func TestParser_MustString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "add(x, 1)", MustString("x + 1").String())
	assert.Panics(t, func() { MustString("x +") })
}

func TestType(t *testing.T) {
	t.Parallel()

	t.Run("named", func(t *testing.T) {
		t.Parallel()
		cases := map[string]types.Type{
			"int":           types.Int,
			"real":          types.Real,
			"bool":          types.Bool,
			"matrix(2, 3)":  &types.Matrix{Rows: 2, Cols: 3},
			"Matrix(4,4)":   &types.Matrix{Rows: 4, Cols: 4},
			"[3, 8]":        &types.Interval{Low: 3, High: 8, IncludesLow: true, IncludesHigh: true},
			"(0, inf]":      &types.Interval{Low: 0, High: math.Inf(1), IncludesLow: false, IncludesHigh: true},
			"[0.5, 2.5)":    &types.Interval{Low: 0.5, High: 2.5, IncludesLow: true, IncludesHigh: false},
			"[0, 100]  # z": &types.Interval{Low: 0, High: 100, IncludesLow: true, IncludesHigh: true},
		}
		for src, expected := range cases {
			defn, err := Type(src)
			require.NoError(t, err, src)
			assert.True(t, expected.Equal(defn), "%s parsed as %v", src, defn)
		}
	})

	t.Run("invalid interval", func(t *testing.T) {
		t.Parallel()
		for _, src := range []string{"[-1, 2]", "[5, 5]", "[8, 3]", "[inf, inf]"} {
			defn, err := Type(src)
			require.ErrorIs(t, err, types.ErrInvalidInterval, src)
			assert.Nil(t, defn, src)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		for _, src := range []string{"", "string", "matrix(0, 2)", "matrix(2)", "[1, 2", "[1 2]", "int int", "{1, 2}"} {
			defn, err := Type(src)
			require.Error(t, err, src)
			assert.Nil(t, defn, src)
			assert.NotErrorIs(t, err, io.EOF, src)
		}
	})
}
