package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/exprcheck/src/ast"
	"github.com/tanema/exprcheck/src/types"
)

func TestDomainByName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"interval", "matrix", "scalar"}, DomainNames())
	for _, name := range DomainNames() {
		dom, ok := DomainByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, dom.Name())
	}
	_, ok := DomainByName("complex")
	assert.False(t, ok)
}

func TestDomains_EveryOperator(t *testing.T) {
	t.Parallel()
	square := &types.Matrix{Rows: 2, Cols: 2}
	unit := closed(1, 2)
	operands := map[string][]types.Type{
		DomainScalar:   {types.Int, types.Real, types.Bool},
		DomainMatrix:   {square, types.Int},
		DomainInterval: {unit, types.Real},
	}
	for name, defns := range operands {
		dom, ok := DomainByName(name)
		require.True(t, ok)
		for _, op := range ast.Ops() {
			for _, args := range argLists(op.Arity(), defns) {
				assert.NotPanics(t, func() {
					res, err := dom.Resolve(op, args)
					if err != nil {
						assert.Nil(t, res, "%s %s%s", name, op, types.Format(args))
						_, isTypeErr := Reason(err)
						assert.True(t, isTypeErr, "%s %s%s", name, op, types.Format(args))
						return
					}
					assert.NotNil(t, res, "%s %s%s", name, op, types.Format(args))
				})
			}
		}
	}
}

func TestScalar_Signatures(t *testing.T) {
	t.Parallel()
	cases := []struct {
		op       ast.Op
		args     []types.Type
		expected types.Type
	}{
		{op: ast.OpAdd, args: []types.Type{types.Int, types.Int}, expected: types.Real},
		{op: ast.OpSub, args: []types.Type{types.Int, types.Real}, expected: types.Real},
		{op: ast.OpMul, args: []types.Type{types.Real, types.Int}, expected: types.Real},
		{op: ast.OpTrueDiv, args: []types.Type{types.Real, types.Real}, expected: types.Real},
		{op: ast.OpGe, args: []types.Type{types.Int, types.Real}, expected: types.Bool},
		{op: ast.OpEq, args: []types.Type{types.Bool, types.Bool}, expected: types.Bool},
		{op: ast.OpAnd, args: []types.Type{types.Bool, types.Bool}, expected: types.Bool},
		{op: ast.OpNot, args: []types.Type{types.Bool}, expected: types.Bool},
		{op: ast.OpNeg, args: []types.Type{types.Real}, expected: types.Real},
		{op: ast.OpAnd, args: []types.Type{types.Bool, types.Int}},
		{op: ast.OpLt, args: []types.Type{types.Bool, types.Bool}},
		{op: ast.OpNot, args: []types.Type{types.Bool, types.Bool}},
		{op: ast.OpAdd, args: []types.Type{types.Int}},
	}
	for _, tc := range cases {
		res, err := Scalar().Resolve(tc.op, tc.args)
		if tc.expected == nil {
			require.ErrorIs(t, err, types.ErrNoMatchingSignature, "%s%s", tc.op, types.Format(tc.args))
			assert.Nil(t, res)
			continue
		}
		require.NoError(t, err, "%s%s", tc.op, types.Format(tc.args))
		assert.Equal(t, tc.expected, res)
	}
}

func TestTable_NoCoercion(t *testing.T) {
	t.Parallel()
	dom := NewTable("strict", NewRegistry(
		Sig(ast.OpAdd, types.Int, types.Int, types.Int),
		Sig(ast.OpAdd, types.Real, types.Real, types.Real),
	))
	assert.Equal(t, "strict", dom.Name())
	assert.Equal(t, 2, dom.Registry().Len())

	res, err := dom.Resolve(ast.OpAdd, []types.Type{types.Int, types.Int})
	require.NoError(t, err)
	assert.Equal(t, types.Int, res)

	_, err = dom.Resolve(ast.OpAdd, []types.Type{types.Int, types.Real})
	require.ErrorIs(t, err, types.ErrNoMatchingSignature)
}

func TestMatrix_Resolve(t *testing.T) {
	t.Parallel()
	a := &types.Matrix{Rows: 2, Cols: 3}
	b := &types.Matrix{Rows: 3, Cols: 4}

	res, err := Matrix().Resolve(ast.OpMul, []types.Type{a, b})
	require.NoError(t, err)
	assert.Equal(t, &types.Matrix{Rows: 2, Cols: 4}, res)

	res, err = Matrix().Resolve(ast.OpSub, []types.Type{a, a})
	require.NoError(t, err)
	assert.Equal(t, a, res)

	res, err = Matrix().Resolve(ast.OpAdd, []types.Type{a, b})
	require.ErrorIs(t, err, types.ErrShapeMismatch)
	assert.Nil(t, res)

	_, err = Matrix().Resolve(ast.OpTrueDiv, []types.Type{a, a})
	require.ErrorIs(t, err, types.ErrNoMatchingSignature)

	_, err = Matrix().Resolve(ast.OpNeg, []types.Type{a})
	require.ErrorIs(t, err, types.ErrNoMatchingSignature)
}

func TestInterval_Resolve(t *testing.T) {
	t.Parallel()
	res, err := Interval().Resolve(ast.OpAdd, []types.Type{closed(3, 8), closed(10, 20)})
	require.NoError(t, err)
	assert.Equal(t, closed(13, 28), res)

	res, err = Interval().Resolve(ast.OpSub, []types.Type{closed(10, 20), closed(3, 8)})
	require.NoError(t, err)
	assert.Equal(t, closed(2, 17), res)

	res, err = Interval().Resolve(ast.OpTrueDiv, []types.Type{closed(0, 1), closed(0, 1)})
	require.ErrorIs(t, err, types.ErrPossibleZeroOverZero)
	assert.Nil(t, res)

	_, err = Interval().Resolve(ast.OpAdd, []types.Type{closed(3, 8), types.Real})
	require.ErrorIs(t, err, types.ErrNoMatchingSignature)
}

func argLists(arity int, defns []types.Type) [][]types.Type {
	if arity == 0 {
		return [][]types.Type{{}}
	}
	lists := [][]types.Type{}
	for _, rest := range argLists(arity-1, defns) {
		for _, defn := range defns {
			lists = append(lists, append([]types.Type{defn}, rest...))
		}
	}
	return lists
}
