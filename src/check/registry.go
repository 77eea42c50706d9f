package check

import (
	"fmt"

	"github.com/tanema/exprcheck/src/ast"
	"github.com/tanema/exprcheck/src/types"
)

type (
	// Signature types an operator applied to exactly these argument types.
	Signature struct {
		Op     ast.Op
		Args   []types.Type
		Result types.Type
	}
	// Registry is an ordered, read only list of signatures.
	Registry struct {
		sigs []Signature
	}
)

// Sig is shorthand for building a Signature.
func Sig(op ast.Op, result types.Type, args ...types.Type) Signature {
	return Signature{Op: op, Args: args, Result: result}
}

func (sig Signature) String() string {
	return fmt.Sprintf("%s%s -> %s", sig.Op, types.Format(sig.Args), sig.Result)
}

// NewRegistry creates a registry from a copy of sigs. Registration order is
// lookup order.
func NewRegistry(sigs ...Signature) *Registry {
	reg := &Registry{sigs: make([]Signature, len(sigs))}
	for i, sig := range sigs {
		reg.sigs[i] = Signature{Op: sig.Op, Args: append([]types.Type{}, sig.Args...), Result: sig.Result}
	}
	return reg
}

// Lookup scans the signatures in registration order and returns the result
// type of the first whose operator matches and whose argument types are
// pointwise equal to args.
func (reg *Registry) Lookup(op ast.Op, args []types.Type) (types.Type, bool) {
	for _, sig := range reg.sigs {
		if sig.Op == op && types.EqualAll(sig.Args, args) {
			return sig.Result, true
		}
	}
	return nil, false
}

// Signatures returns a copy of the registered signatures.
func (reg *Registry) Signatures() []Signature {
	return NewRegistry(reg.sigs...).sigs
}

// Len is the number of registered signatures.
func (reg *Registry) Len() int { return len(reg.sigs) }
