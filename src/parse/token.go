package parse

import (
	"fmt"

	"github.com/tanema/exprcheck/src/ast"
)

type (
	tokenType string
	token     struct {
		ast.LineInfo
		Kind      tokenType
		StringVal string
		FloatVal  float64
		IntVal    int64
	}
)

const (
	tokenAdd          tokenType = "+"
	tokenMinus        tokenType = "-"
	tokenMultiply     tokenType = "*"
	tokenDivide       tokenType = "/"
	tokenComma        tokenType = ","
	tokenOpenParen    tokenType = "("
	tokenCloseParen   tokenType = ")"
	tokenOpenBracket  tokenType = "["
	tokenCloseBracket tokenType = "]"
	tokenAnd          tokenType = "and"
	tokenOr           tokenType = "or"
	tokenNot          tokenType = "not"
	tokenEq           tokenType = "=="
	tokenGe           tokenType = ">="
	tokenGt           tokenType = ">"
	tokenLe           tokenType = "<="
	tokenLt           tokenType = "<"
	tokenNe           tokenType = "!="
	tokenFloat        tokenType = "float"
	tokenInteger      tokenType = "integer"
	tokenIdentifier   tokenType = "identifier"
	tokenEOS          tokenType = "<EOS>"
)

const (
	// priority of the operand of unary minus.
	unaryPriority = 12
	// priority of the operand of not, it binds looser than comparisons so that
	// not x > 0 reads not (x > 0).
	notPriority = 2
	// priority of implicit multiplication by juxtaposition, as in A y.
	juxtaposePriority = 11
)

// left, right priority for binary ops.
var (
	binaryPriority = map[tokenType][2]int{
		tokenOr:       {1, 1},
		tokenAnd:      {2, 2},
		tokenEq:       {3, 3},
		tokenLt:       {3, 3},
		tokenLe:       {3, 3},
		tokenGt:       {3, 3},
		tokenGe:       {3, 3},
		tokenNe:       {3, 3},
		tokenAdd:      {10, 10},
		tokenMinus:    {10, 10},
		tokenMultiply: {11, 11},
		tokenDivide:   {11, 11},
	}
	keywords = map[string]tokenType{
		string(tokenAnd): tokenAnd,
		string(tokenOr):  tokenOr,
		string(tokenNot): tokenNot,
	}
	tokenToOp = map[tokenType]ast.Op{
		tokenAdd:      ast.OpAdd,
		tokenMinus:    ast.OpSub,
		tokenMultiply: ast.OpMul,
		tokenDivide:   ast.OpTrueDiv,
		tokenEq:       ast.OpEq,
		tokenNe:       ast.OpNe,
		tokenLt:       ast.OpLt,
		tokenLe:       ast.OpLe,
		tokenGt:       ast.OpGt,
		tokenGe:       ast.OpGe,
		tokenAnd:      ast.OpAnd,
		tokenOr:       ast.OpOr,
	}
)

func (tk *token) String() string {
	switch tk.Kind {
	case tokenFloat:
		return fmt.Sprintf("f%v", tk.FloatVal)
	case tokenInteger:
		return fmt.Sprintf("i%v", tk.IntVal)
	case tokenIdentifier:
		return fmt.Sprintf("<%v>", tk.StringVal)
	default:
		return string(tk.Kind)
	}
}

func (tk *token) isUnary() bool {
	switch tk.Kind {
	case tokenNot, tokenMinus:
		return true
	default:
		return false
	}
}

func (tk *token) isBinary() bool {
	_, ok := binaryPriority[tk.Kind]
	return ok
}

// startsOperand reports whether the token can begin an operand that directly
// follows another one, which is read as implicit multiplication.
func (tk *token) startsOperand() bool {
	switch tk.Kind {
	case tokenIdentifier, tokenInteger, tokenFloat, tokenOpenParen:
		return true
	default:
		return false
	}
}
