package ast

// Op is the closed set of operators a Call node may apply.
type Op int

const (
	// OpAdd is binary addition.
	OpAdd Op = iota
	// OpSub is binary subtraction.
	OpSub
	// OpMul is binary multiplication, also produced by juxtaposition.
	OpMul
	// OpTrueDiv is binary division.
	OpTrueDiv
	// OpNeg is unary negation.
	OpNeg
	// OpEq is the == comparison.
	OpEq
	// OpNe is the != comparison.
	OpNe
	// OpLt is the < comparison.
	OpLt
	// OpLe is the <= comparison.
	OpLe
	// OpGt is the > comparison.
	OpGt
	// OpGe is the >= comparison.
	OpGe
	// OpAnd is boolean conjunction.
	OpAnd
	// OpOr is boolean disjunction.
	OpOr
	// OpNot is boolean negation.
	OpNot
	numOps
)

var opNames = [numOps]string{
	OpAdd:     "add",
	OpSub:     "sub",
	OpMul:     "mul",
	OpTrueDiv: "truediv",
	OpNeg:     "neg",
	OpEq:      "eq",
	OpNe:      "ne",
	OpLt:      "lt",
	OpLe:      "le",
	OpGt:      "gt",
	OpGe:      "ge",
	OpAnd:     "and",
	OpOr:      "or",
	OpNot:     "not",
}

func (op Op) String() string {
	if !op.Valid() {
		return "op(?)"
	}
	return opNames[op]
}

// Valid reports whether op is part of the vocabulary.
func (op Op) Valid() bool { return op >= 0 && op < numOps }

// Arity is the number of operands the operator takes.
func (op Op) Arity() int {
	switch op {
	case OpNot, OpNeg:
		return 1
	default:
		return 2
	}
}

// ParseOp maps an operator name such as "truediv" back to its Op.
func ParseOp(name string) (Op, bool) {
	for op, opName := range opNames {
		if opName == name {
			return Op(op), true
		}
	}
	return 0, false
}

// Ops lists every operator in declaration order.
func Ops() []Op {
	ops := make([]Op, numOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}
