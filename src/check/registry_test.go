package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/exprcheck/src/ast"
	"github.com/tanema/exprcheck/src/types"
)

func TestRegistry_FirstMatchWins(t *testing.T) {
	t.Parallel()
	reg := NewRegistry(
		Sig(ast.OpAdd, types.Int, types.Int, types.Int),
		Sig(ast.OpAdd, types.Real, types.Int, types.Int),
		Sig(ast.OpNot, types.Bool, types.Bool),
	)
	res, ok := reg.Lookup(ast.OpAdd, []types.Type{types.Int, types.Int})
	require.True(t, ok)
	assert.Equal(t, types.Int, res)

	_, ok = reg.Lookup(ast.OpSub, []types.Type{types.Int, types.Int})
	assert.False(t, ok)
	_, ok = reg.Lookup(ast.OpNot, []types.Type{types.Bool, types.Bool})
	assert.False(t, ok)
	_, ok = reg.Lookup(ast.OpNot, nil)
	assert.False(t, ok)
}

func TestRegistry_Copies(t *testing.T) {
	t.Parallel()
	sigs := []Signature{Sig(ast.OpAdd, types.Real, types.Real, types.Real)}
	reg := NewRegistry(sigs...)
	sigs[0].Args[0] = types.Int
	sigs[0].Result = types.Bool

	res, ok := reg.Lookup(ast.OpAdd, []types.Type{types.Real, types.Real})
	require.True(t, ok)
	assert.Equal(t, types.Real, res)

	listed := reg.Signatures()
	listed[0].Args[1] = types.Bool
	_, ok = reg.Lookup(ast.OpAdd, []types.Type{types.Real, types.Real})
	assert.True(t, ok)
	assert.Equal(t, 1, reg.Len())
}

func TestSignature_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "add(int, real) -> real", Sig(ast.OpAdd, types.Real, types.Int, types.Real).String())
	assert.Equal(t, "not(bool) -> bool", Sig(ast.OpNot, types.Bool, types.Bool).String())
}

func TestScalarRegistry(t *testing.T) {
	t.Parallel()
	// 4 arithmetic and 6 comparison operators over every numeric pair, plus
	// the boolean and negation rules.
	assert.Equal(t, 4*4+6*4+7, Scalar().Registry().Len())
	for _, sig := range Scalar().Registry().Signatures() {
		assert.Len(t, sig.Args, sig.Op.Arity(), sig.String())
	}
}

func TestEnv(t *testing.T) {
	t.Parallel()
	env := NewEnv(map[string]types.Type{"x": types.Real, "b": types.Bool})
	assert.Equal(t, 2, env.Len())
	assert.Equal(t, []string{"b", "x"}, env.Names())

	withY := env.With("y", types.Int)
	assert.Equal(t, 2, env.Len())
	assert.Equal(t, []string{"b", "x", "y"}, withY.Names())
	_, ok := env.Lookup("y")
	assert.False(t, ok)

	shadowed := withY.With("x", types.Int)
	defn, ok := shadowed.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, types.Int, defn)
	defn, _ = withY.Lookup("x")
	assert.Equal(t, types.Real, defn)

	withoutX := shadowed.Without("x")
	_, ok = withoutX.Lookup("x")
	assert.False(t, ok)
	_, ok = shadowed.Lookup("x")
	assert.True(t, ok)

	var zero Env
	_, ok = zero.Lookup("x")
	assert.False(t, ok)
	assert.Empty(t, zero.Names())
	assert.Equal(t, 1, zero.With("x", types.Real).Len())
	assert.Equal(t, 0, zero.Without("x").Len())
}
