// Package ast contains the untyped expression tree produced by the parser and
// the typed tree produced by the checker. Both trees are closed sums of three
// node kinds, literals, symbols and calls, so a type switch over them can name
// every case.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	// LineInfo is the source position a node was parsed from. Nodes built by
	// hand carry the zero value.
	LineInfo struct {
		Line   int64
		Column int64
	}
	// LitKind is the intrinsic scalar kind of a literal.
	LitKind int
	// Node is an untyped expression. Only the types in this package implement it.
	Node interface {
		fmt.Stringer
		Pos() LineInfo
		node()
	}
	// Literal is a numeric constant.
	Literal struct {
		LineInfo
		Kind  LitKind
		Int   int64
		Float float64
	}
	// Symbol is a free variable whose type comes from the environment.
	Symbol struct {
		LineInfo
		Name string
	}
	// Call applies an operator to its ordered arguments.
	Call struct {
		LineInfo
		Op   Op
		Args []Node
	}
)

const (
	// LitInt marks integer literals.
	LitInt LitKind = iota
	// LitReal marks real literals.
	LitReal
)

// Int creates an integer literal.
func Int(val int64) *Literal { return &Literal{Kind: LitInt, Int: val} }

// Real creates a real literal.
func Real(val float64) *Literal { return &Literal{Kind: LitReal, Float: val} }

// Sym creates a symbol reference.
func Sym(name string) *Symbol { return &Symbol{Name: name} }

// NewCall creates a call of op over args.
func NewCall(op Op, args ...Node) *Call { return &Call{Op: op, Args: args} }

// Pos returns the source position of the node.
func (li LineInfo) Pos() LineInfo { return li }

func (kind LitKind) String() string {
	if kind == LitInt {
		return "int"
	}
	return "real"
}

func (lit *Literal) node() {}
func (sym *Symbol) node()  {}
func (call *Call) node()   {}

func (lit *Literal) String() string {
	if lit.Kind == LitInt {
		return strconv.FormatInt(lit.Int, 10)
	}
	str := strconv.FormatFloat(lit.Float, 'g', -1, 64)
	if !strings.ContainsAny(str, ".eEnN") {
		str += ".0"
	}
	return str
}

func (sym *Symbol) String() string { return sym.Name }

func (call *Call) String() string {
	parts := make([]string, len(call.Args))
	for i, arg := range call.Args {
		parts[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", call.Op, strings.Join(parts, ", "))
}
