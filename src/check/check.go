// Package check is the type inference engine. It walks an untyped expression
// bottom up, resolving symbols from an Env and calls through a Domain, and
// produces a typed tree or the first failure it meets.
package check

import (
	"errors"
	"fmt"

	"github.com/tanema/exprcheck/src/ast"
	"github.com/tanema/exprcheck/src/lerrors"
	"github.com/tanema/exprcheck/src/types"
)

// Checker binds an environment and a domain so that many expressions can be
// checked against them. Filename is only used when reporting positions.
type Checker struct {
	Env      Env
	Domain   Domain
	Filename string
}

// New creates a checker for the domain with the given environment.
func New(env Env, dom Domain) *Checker {
	return &Checker{Env: env, Domain: dom}
}

// Infer types node against env using dom.
func Infer(node ast.Node, env Env, dom Domain) (ast.Typed, error) {
	return New(env, dom).Infer(node)
}

// Infer types node. On failure no typed tree is returned and the error is a
// *lerrors.Error of kind TypeErr positioned at the smallest subexpression that
// failed, wrapping the *types.Error that explains why.
func (c *Checker) Infer(node ast.Node) (ast.Typed, error) {
	switch tn := node.(type) {
	case *ast.Literal:
		return ast.NewTypedLiteral(tn, literalType(tn.Kind)), nil
	case *ast.Symbol:
		defn, ok := c.Env.Lookup(tn.Name)
		if !ok {
			return nil, c.typeErr(tn, &types.Error{Reason: types.UnboundSymbol, Symbol: tn.Name})
		}
		return ast.NewTypedSymbol(tn, defn), nil
	case *ast.Call:
		return c.inferCall(tn)
	default:
		return nil, c.typeErr(node, fmt.Errorf("unexpected node %T", node))
	}
}

func (c *Checker) inferCall(call *ast.Call) (ast.Typed, error) {
	args := make([]ast.Typed, len(call.Args))
	argTypes := make([]types.Type, len(call.Args))
	for i, arg := range call.Args {
		typed, err := c.Infer(arg)
		if err != nil {
			return nil, err
		}
		args[i] = typed
		argTypes[i] = typed.TypeOf()
	}
	if !call.Op.Valid() {
		return nil, c.typeErr(call, types.NoSignature(call.Op.String(), argTypes...))
	}
	res, err := c.Domain.Resolve(call.Op, argTypes)
	if err != nil {
		return nil, c.typeErr(call, err)
	} else if res == nil {
		return nil, c.typeErr(call, types.NoSignature(call.Op.String(), argTypes...))
	}
	return ast.NewTypedCall(call, args, res), nil
}

func literalType(kind ast.LitKind) types.Type {
	if kind == ast.LitInt {
		return types.Int
	}
	return types.Real
}

func (c *Checker) typeErr(node ast.Node, err error) error {
	newErr := &lerrors.Error{
		Kind:     lerrors.TypeErr,
		Filename: c.Filename,
		Err:      err,
	}
	if node != nil {
		pos := node.Pos()
		newErr.Line = pos.Line
		newErr.Column = pos.Column
	}
	return newErr
}

// Reason extracts the typing failure wrapped in err, if there is one.
func Reason(err error) (*types.Error, bool) {
	var terr *types.Error
	if errors.As(err, &terr) {
		return terr, true
	}
	return nil, false
}
