package ast

import (
	"fmt"
	"strings"

	"github.com/tanema/exprcheck/src/types"
)

type (
	// Typed is an expression whose type has been resolved. Only the types in
	// this package implement it and values are only built once every child
	// has been typed.
	Typed interface {
		fmt.Stringer
		Pos() LineInfo
		TypeOf() types.Type
		typed()
	}
	// TypedLiteral is a literal with its resolved type.
	TypedLiteral struct {
		LineInfo
		Kind  LitKind
		Int   int64
		Float float64
		Type  types.Type
	}
	// TypedSymbol is a symbol with the type it was declared with.
	TypedSymbol struct {
		LineInfo
		Name string
		Type types.Type
	}
	// TypedCall is a call whose arguments are typed and whose result type has
	// been resolved from them.
	TypedCall struct {
		LineInfo
		Op   Op
		Args []Typed
		Type types.Type
	}
)

// NewTypedLiteral types a literal.
func NewTypedLiteral(lit *Literal, defn types.Type) *TypedLiteral {
	return &TypedLiteral{LineInfo: lit.LineInfo, Kind: lit.Kind, Int: lit.Int, Float: lit.Float, Type: defn}
}

// NewTypedSymbol types a symbol.
func NewTypedSymbol(sym *Symbol, defn types.Type) *TypedSymbol {
	return &TypedSymbol{LineInfo: sym.LineInfo, Name: sym.Name, Type: defn}
}

// NewTypedCall types a call from its already typed arguments.
func NewTypedCall(call *Call, args []Typed, defn types.Type) *TypedCall {
	return &TypedCall{LineInfo: call.LineInfo, Op: call.Op, Args: args, Type: defn}
}

func (lit *TypedLiteral) typed() {}
func (sym *TypedSymbol) typed()  {}
func (call *TypedCall) typed()   {}

// TypeOf returns the resolved type.
func (lit *TypedLiteral) TypeOf() types.Type { return lit.Type }

// TypeOf returns the resolved type.
func (sym *TypedSymbol) TypeOf() types.Type { return sym.Type }

// TypeOf returns the resolved type.
func (call *TypedCall) TypeOf() types.Type { return call.Type }

func (lit *TypedLiteral) String() string {
	return fmt.Sprintf("%s : %s", lit.untyped(), lit.Type)
}

func (sym *TypedSymbol) String() string {
	return fmt.Sprintf("%s : %s", sym.Name, sym.Type)
}

func (call *TypedCall) String() string {
	parts := make([]string, len(call.Args))
	for i, arg := range call.Args {
		parts[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s) : %s", call.Op, strings.Join(parts, ", "), call.Type)
}

// Untyped rebuilds the untyped tree a typed tree was produced from.
func Untyped(node Typed) Node {
	switch tn := node.(type) {
	case *TypedLiteral:
		return tn.untyped()
	case *TypedSymbol:
		return &Symbol{LineInfo: tn.LineInfo, Name: tn.Name}
	case *TypedCall:
		args := make([]Node, len(tn.Args))
		for i, arg := range tn.Args {
			args[i] = Untyped(arg)
		}
		return &Call{LineInfo: tn.LineInfo, Op: tn.Op, Args: args}
	default:
		panic(fmt.Sprintf("unexpected typed node %T", node))
	}
}

func (lit *TypedLiteral) untyped() *Literal {
	return &Literal{LineInfo: lit.LineInfo, Kind: lit.Kind, Int: lit.Int, Float: lit.Float}
}
