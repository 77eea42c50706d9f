package parse

import (
	"github.com/tanema/exprcheck/src/ast"
)

func newInfixExpr(op *token, left, right ast.Node) ast.Node {
	return &ast.Call{
		LineInfo: op.LineInfo,
		Op:       tokenToOp[op.Kind],
		Args:     []ast.Node{left, right},
	}
}

// unaryExpression folds negated literals into negative literals, everything
// else becomes a call.
func unaryExpression(tk *token, valDesc ast.Node) ast.Node {
	switch tk.Kind {
	case tokenNot:
		return &ast.Call{LineInfo: tk.LineInfo, Op: ast.OpNot, Args: []ast.Node{valDesc}}
	default:
		if lit, isLit := valDesc.(*ast.Literal); isLit {
			return &ast.Literal{LineInfo: tk.LineInfo, Kind: lit.Kind, Int: -lit.Int, Float: -lit.Float}
		}
		return &ast.Call{LineInfo: tk.LineInfo, Op: ast.OpNeg, Args: []ast.Node{valDesc}}
	}
}
