// Package parse reads the concrete syntax of expressions and type annotations
// into the untyped tree and type values the checker works with.
package parse

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tanema/exprcheck/src/ast"
	"github.com/tanema/exprcheck/src/lerrors"
)

// Parser reads one expression at a time from a source.
type Parser struct {
	lex      *lexer
	filename string
}

// New creates a parser over src. filename is only used for error positions.
func New(filename string, src io.Reader) *Parser {
	return &Parser{
		filename: filename,
		lex:      newLexer(filename, src),
	}
}

// File is a helper function around Expr to open and close a file automatically.
func File(path string) (ast.Node, error) {
	src, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()
	return Expr(path, src)
}

// Expr parses a single expression that must span the whole source. Empty or
// unfinished input returns io.EOF so interactive callers can ask for more.
func Expr(filename string, src io.Reader) (ast.Node, error) {
	return New(filename, src).Parse()
}

// String parses a single expression from a string.
func String(src string) (ast.Node, error) {
	return Expr("<string>", strings.NewReader(src))
}

// MustString parses src and panics if it is not a valid expression. It is
// meant for fixed expressions such as those in tests.
func MustString(src string) ast.Node {
	node, err := String(src)
	if err != nil {
		panic(err)
	}
	return node
}

// Parse reads one expression and requires the source to end after it.
func (p *Parser) Parse() (ast.Node, error) {
	node, err := p.expression()
	if err != nil {
		return nil, err
	}
	tk, err := p.peek()
	if err != nil {
		return nil, err
	} else if tk.Kind != tokenEOS {
		return nil, p.parseErr(tk, fmt.Errorf("unexpected %v after expression", tk.Kind))
	}
	return node, nil
}

func (p *Parser) parseErr(tk *token, err error) error {
	if err == nil {
		return nil
	}
	var exErr *lerrors.Error
	if errors.As(err, &exErr) {
		return err
	} else if errors.Is(err, io.EOF) {
		return err
	}
	newErr := &lerrors.Error{
		Kind:     lerrors.ParserErr,
		Filename: p.filename,
		Err:      err,
	}
	if tk != nil {
		newErr.Line = tk.Line
		newErr.Column = tk.Column
	}
	return newErr
}

func (p *Parser) peek() (*token, error) {
	return p.lex.Peek()
}

func (p *Parser) consumeToken(tt tokenType) (*token, error) {
	tk, err := p.lex.Next()
	if err != nil {
		return nil, p.parseErr(tk, err)
	} else if tt != tk.Kind {
		return nil, p.parseErr(tk, fmt.Errorf("expected %q but consumed %q", tt, tk.Kind))
	}
	return tk, nil
}

func (p *Parser) next(tt tokenType) error {
	_, err := p.consumeToken(tt)
	return err
}

func (p *Parser) expression() (ast.Node, error) {
	return p.expr(0)
}

// where 'binop' is any binary operator with a priority higher than 'limit'.
// An operand directly following another is multiplied by it.
func (p *Parser) expr(limit int) (ast.Node, error) {
	var desc ast.Node
	if tk, err := p.peek(); err != nil {
		return nil, err
	} else if tk.isUnary() {
		if err = p.next(tk.Kind); err != nil {
			return nil, err
		}
		operandLimit := unaryPriority
		if tk.Kind == tokenNot {
			operandLimit = notPriority
		}
		if desc, err = p.expr(operandLimit); err != nil {
			return nil, err
		}
		desc = unaryExpression(tk, desc)
	} else if desc, err = p.simpleexp(); err != nil {
		return nil, err
	}
	op, err := p.peek()
	if err != nil {
		return nil, err
	}
	for {
		var rdesc ast.Node
		if op.isBinary() && binaryPriority[op.Kind][0] > limit {
			if err := p.next(op.Kind); err != nil {
				return nil, err
			} else if rdesc, err = p.expr(binaryPriority[op.Kind][1]); err != nil {
				return nil, err
			}
			desc = newInfixExpr(op, desc, rdesc)
		} else if op.startsOperand() && juxtaposePriority > limit {
			if rdesc, err = p.expr(juxtaposePriority); err != nil {
				return nil, err
			}
			desc = newInfixExpr(&token{Kind: tokenMultiply, LineInfo: op.LineInfo}, desc, rdesc)
		} else {
			return desc, nil
		}
		if op, err = p.peek(); err != nil {
			return nil, err
		}
	}
}

// simpleexp -> Float | Integer | NAME | '(' expr ')'.
func (p *Parser) simpleexp() (ast.Node, error) {
	tk, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tk.Kind {
	case tokenFloat:
		if err := p.next(tokenFloat); err != nil {
			return nil, err
		}
		return &ast.Literal{LineInfo: tk.LineInfo, Kind: ast.LitReal, Float: tk.FloatVal}, nil
	case tokenInteger:
		if err := p.next(tokenInteger); err != nil {
			return nil, err
		}
		return &ast.Literal{LineInfo: tk.LineInfo, Kind: ast.LitInt, Int: tk.IntVal}, nil
	case tokenIdentifier:
		if err := p.next(tokenIdentifier); err != nil {
			return nil, err
		}
		return &ast.Symbol{LineInfo: tk.LineInfo, Name: tk.StringVal}, nil
	case tokenOpenParen:
		if err := p.next(tokenOpenParen); err != nil {
			return nil, err
		}
		desc, err := p.expression()
		if err != nil {
			return nil, err
		}
		return desc, p.closeWith(tokenCloseParen)
	case tokenEOS:
		return nil, io.EOF
	default:
		return nil, p.parseErr(tk, fmt.Errorf("unexpected symbol %v", tk.Kind))
	}
}

// closeWith consumes the closing token, reporting io.EOF when the source ran
// out before it.
func (p *Parser) closeWith(tt tokenType) error {
	tk, err := p.peek()
	if err != nil {
		return err
	} else if tk.Kind == tokenEOS {
		return io.EOF
	}
	return p.next(tt)
}
