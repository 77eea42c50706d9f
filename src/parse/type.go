package parse

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tanema/exprcheck/src/types"
)

// Type parses a type annotation:
//
//	int | real | bool
//	matrix(rows, cols)
//	[low, high] | (low, high] | [low, inf) | ...
func Type(src string) (types.Type, error) {
	p := New("<type>", strings.NewReader(src))
	defn, err := p.typestat()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, p.parseErr(nil, fmt.Errorf("incomplete type %q", src))
		}
		return nil, err
	}
	if tk, err := p.peek(); err != nil {
		return nil, err
	} else if tk.Kind != tokenEOS {
		return nil, p.parseErr(tk, fmt.Errorf("unexpected %v after type", tk.Kind))
	}
	return defn, nil
}

func (p *Parser) typestat() (types.Type, error) {
	tk, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch tk.Kind {
	case tokenIdentifier:
		return p.namedtype()
	case tokenOpenBracket, tokenOpenParen:
		return p.intervaltype()
	case tokenEOS:
		return nil, io.EOF
	default:
		return nil, p.parseErr(tk, fmt.Errorf("unexpected symbol %v in type", tk.Kind))
	}
}

func (p *Parser) namedtype() (types.Type, error) {
	name, err := p.consumeToken(tokenIdentifier)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(name.StringVal, "matrix") {
		return p.matrixtype()
	} else if defn, ok := types.ByName(name.StringVal); ok {
		return defn, nil
	}
	return nil, p.parseErr(name, fmt.Errorf("unknown type %v", name.StringVal))
}

// matrixtype -> '(' Integer ',' Integer ')'.
func (p *Parser) matrixtype() (types.Type, error) {
	if err := p.next(tokenOpenParen); err != nil {
		return nil, err
	}
	rows, err := p.consumeToken(tokenInteger)
	if err != nil {
		return nil, err
	} else if err := p.next(tokenComma); err != nil {
		return nil, err
	}
	cols, err := p.consumeToken(tokenInteger)
	if err != nil {
		return nil, err
	} else if err := p.next(tokenCloseParen); err != nil {
		return nil, err
	}
	defn, err := types.NewMatrix(int(rows.IntVal), int(cols.IntVal))
	if err != nil {
		return nil, p.parseErr(rows, err)
	}
	return defn, nil
}

// intervaltype -> ('[' | '(') bound ',' bound (']' | ')').
func (p *Parser) intervaltype() (types.Type, error) {
	open, err := p.lex.Next()
	if err != nil {
		return nil, err
	}
	low, err := p.bound()
	if err != nil {
		return nil, err
	} else if err := p.next(tokenComma); err != nil {
		return nil, err
	}
	high, err := p.bound()
	if err != nil {
		return nil, err
	}
	closing, err := p.lex.Next()
	if err != nil {
		return nil, err
	} else if closing.Kind != tokenCloseBracket && closing.Kind != tokenCloseParen {
		return nil, p.parseErr(closing, fmt.Errorf("expected ] or ) but consumed %q", closing.Kind))
	}
	defn, err := types.NewInterval(low, high, open.Kind == tokenOpenBracket, closing.Kind == tokenCloseBracket)
	if err != nil {
		return nil, p.parseErr(open, err)
	}
	return defn, nil
}

// bound -> ['-'] (Integer | Float | inf).
func (p *Parser) bound() (float64, error) {
	sign := 1.0
	tk, err := p.lex.Next()
	if err != nil {
		return 0, err
	} else if tk.Kind == tokenMinus {
		sign = -1
		if tk, err = p.lex.Next(); err != nil {
			return 0, err
		}
	}
	switch {
	case tk.Kind == tokenInteger:
		return sign * float64(tk.IntVal), nil
	case tk.Kind == tokenFloat:
		return sign * tk.FloatVal, nil
	case tk.Kind == tokenIdentifier && tk.StringVal == "inf":
		return math.Inf(int(sign)), nil
	default:
		return 0, p.parseErr(tk, fmt.Errorf("expected interval bound but consumed %q", tk.Kind))
	}
}
