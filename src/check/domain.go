package check

import (
	"slices"

	"github.com/tanema/exprcheck/src/ast"
	"github.com/tanema/exprcheck/src/types"
)

type (
	// Domain is the type algebra plugged into the checker. Resolve computes the
	// result type of op applied to already typed arguments, or fails with a
	// *types.Error describing why the operation is undefined.
	Domain interface {
		Name() string
		Resolve(op ast.Op, args []types.Type) (types.Type, error)
	}
	// Table resolves calls by looking them up in a signature registry.
	Table struct {
		name string
		reg  *Registry
	}
	matrixDomain   struct{}
	intervalDomain struct{}
)

const (
	// DomainScalar is the name of the table driven scalar domain.
	DomainScalar = "scalar"
	// DomainMatrix is the name of the matrix shape domain.
	DomainMatrix = "matrix"
	// DomainInterval is the name of the interval arithmetic domain.
	DomainInterval = "interval"
)

var (
	numeric       = []types.Type{types.Int, types.Real}
	scalarDomain  = NewTable(DomainScalar, scalarRegistry())
	builtinDomain = map[string]Domain{
		DomainScalar:   scalarDomain,
		DomainMatrix:   matrixDomain{},
		DomainInterval: intervalDomain{},
	}
)

// NewTable creates a table driven domain over reg.
func NewTable(name string, reg *Registry) *Table {
	return &Table{name: name, reg: reg}
}

// Name is the name of the domain.
func (tbl *Table) Name() string { return tbl.name }

// Registry exposes the signatures the table resolves with.
func (tbl *Table) Registry() *Registry { return tbl.reg }

// Resolve finds the first registered signature for op that takes exactly args.
func (tbl *Table) Resolve(op ast.Op, args []types.Type) (types.Type, error) {
	if res, ok := tbl.reg.Lookup(op, args); ok {
		return res, nil
	}
	return nil, types.NoSignature(op.String(), args...)
}

// Scalar is the table driven int/real/bool domain. Every arithmetic result
// is widened to real regardless of the operand kinds, no operand is ever
// coerced.
func Scalar() *Table { return scalarDomain }

func scalarRegistry() *Registry {
	sigs := []Signature{}
	for _, op := range []ast.Op{ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpTrueDiv} {
		sigs = append(sigs, numericPairs(op, types.Real)...)
	}
	for _, op := range []ast.Op{ast.OpEq, ast.OpNe, ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe} {
		sigs = append(sigs, numericPairs(op, types.Bool)...)
	}
	return NewRegistry(append(sigs,
		Sig(ast.OpEq, types.Bool, types.Bool, types.Bool),
		Sig(ast.OpNe, types.Bool, types.Bool, types.Bool),
		Sig(ast.OpAnd, types.Bool, types.Bool, types.Bool),
		Sig(ast.OpOr, types.Bool, types.Bool, types.Bool),
		Sig(ast.OpNot, types.Bool, types.Bool),
		Sig(ast.OpNeg, types.Int, types.Int),
		Sig(ast.OpNeg, types.Real, types.Real),
	)...)
}

func numericPairs(op ast.Op, result types.Type) []Signature {
	sigs := []Signature{}
	for _, l := range numeric {
		for _, r := range numeric {
			sigs = append(sigs, Sig(op, result, l, r))
		}
	}
	return sigs
}

// Matrix is the shape checking domain. add and sub need equal shapes, mul
// needs conformable shapes.
func Matrix() Domain { return matrixDomain{} }

func (matrixDomain) Name() string { return DomainMatrix }

func (matrixDomain) Resolve(op ast.Op, args []types.Type) (types.Type, error) {
	if len(args) != 2 {
		return nil, types.NoSignature(op.String(), args...)
	}
	lhs, lok := args[0].(*types.Matrix)
	rhs, rok := args[1].(*types.Matrix)
	if !lok || !rok {
		return nil, types.NoSignature(op.String(), args...)
	}
	switch op {
	case ast.OpAdd:
		return result(lhs.Add(rhs))
	case ast.OpSub:
		return result(lhs.Sub(rhs))
	case ast.OpMul:
		return result(lhs.Mul(rhs))
	default:
		return nil, types.NoSignature(op.String(), args...)
	}
}

// Interval is the refinement domain over non-negative intervals. Division that
// may produce 0/0 or inf/inf is rejected.
func Interval() Domain { return intervalDomain{} }

func (intervalDomain) Name() string { return DomainInterval }

func (intervalDomain) Resolve(op ast.Op, args []types.Type) (types.Type, error) {
	if len(args) != 2 {
		return nil, types.NoSignature(op.String(), args...)
	}
	lhs, lok := args[0].(*types.Interval)
	rhs, rok := args[1].(*types.Interval)
	if !lok || !rok {
		return nil, types.NoSignature(op.String(), args...)
	}
	switch op {
	case ast.OpAdd:
		return result(lhs.Add(rhs))
	case ast.OpSub:
		return result(lhs.Sub(rhs))
	case ast.OpTrueDiv:
		return result(lhs.Div(rhs))
	default:
		return nil, types.NoSignature(op.String(), args...)
	}
}

// result keeps a typed nil pointer from leaking out as a non nil types.Type.
func result[T types.Type](res T, err error) (types.Type, error) {
	if err != nil {
		return nil, err
	}
	return res, nil
}

// DomainByName finds one of the built in domains.
func DomainByName(name string) (Domain, bool) {
	dom, ok := builtinDomain[name]
	return dom, ok
}

// DomainNames lists the built in domain names in sorted order.
func DomainNames() []string {
	names := make([]string, 0, len(builtinDomain))
	for name := range builtinDomain {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
