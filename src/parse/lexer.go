package parse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/tanema/exprcheck/src/ast"
	"github.com/tanema/exprcheck/src/lerrors"
)

type lexer struct {
	filename string
	rdr      *bufio.Reader
	peeked   []*token
	ast.LineInfo
}

func newLexer(filename string, src io.Reader) *lexer {
	return &lexer{
		filename: filename,
		LineInfo: ast.LineInfo{Line: 1},
		rdr:      bufio.NewReaderSize(src, 4096),
		peeked:   []*token{},
	}
}

func (lex *lexer) errf(msg string, data ...any) error {
	return lex.err(fmt.Errorf(msg, data...))
}

func (lex *lexer) err(err error) error {
	if errors.Is(err, io.EOF) {
		return err
	}
	return &lerrors.Error{
		Filename: lex.filename,
		Kind:     lerrors.LexerErr,
		Line:     lex.Line,
		Column:   lex.Column,
		Err:      err,
	}
}

func (lex *lexer) peek() rune {
	chs, _ := lex.rdr.Peek(1)
	if len(chs) == 0 {
		return 0
	}
	return rune(chs[0])
}

func (lex *lexer) next() (rune, error) {
	ch, _, err := lex.rdr.ReadRune()
	if err != nil {
		return ch, lex.err(err)
	}
	if ch == '\n' {
		lex.Line++
		lex.Column = 0
		return ch, nil
	}
	lex.Column++
	return ch, nil
}

func (lex *lexer) skipWhitespace() error {
	for {
		switch lex.peek() {
		case ' ', '\t', '\n', '\r':
			if _, err := lex.next(); err != nil {
				return err
			}
		case '#':
			if err := lex.skipComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// comments run from # to the end of the line.
func (lex *lexer) skipComment() error {
	for {
		ch, err := lex.next()
		if err != nil {
			return err
		} else if ch == '\n' {
			return nil
		}
	}
}

func (lex *lexer) tokenVal(tk tokenType) (*token, error) {
	return &token{Kind: tk, LineInfo: ast.LineInfo{Line: lex.Line, Column: lex.Column - int64(len(tk)) + 1}}, nil
}

func (lex *lexer) takeTokenVal(tk tokenType) (*token, error) {
	_, err := lex.next()
	return &token{Kind: tk, LineInfo: ast.LineInfo{Line: lex.Line, Column: lex.Column - int64(len(tk)) + 1}}, err
}

// allow for FIFO stack.
func (lex *lexer) back(tk *token) {
	lex.peeked = append(lex.peeked, tk)
}

func (lex *lexer) Peek() (*token, error) {
	if len(lex.peeked) == 0 {
		tk, err := lex.Next()
		if err != nil && !errors.Is(err, io.EOF) {
			return &token{Kind: tokenEOS, LineInfo: lex.LineInfo}, err
		} else if err != nil && errors.Is(err, io.EOF) {
			return &token{Kind: tokenEOS, LineInfo: lex.LineInfo}, nil
		}
		lex.back(tk)
	}
	return lex.peeked[len(lex.peeked)-1], nil
}

func (lex *lexer) Next() (*token, error) {
	if len(lex.peeked) != 0 {
		top := lex.peeked[len(lex.peeked)-1]
		lex.peeked = lex.peeked[:len(lex.peeked)-1]
		return top, nil
	}
	if err := lex.skipWhitespace(); err != nil {
		return nil, err
	}
	ch, err := lex.next()
	if err != nil {
		return nil, err
	}
	peekCh := lex.peek()
	switch {
	case ch == '=' && peekCh == '=':
		return lex.takeTokenVal(tokenEq)
	case (ch == '!' || ch == '~') && peekCh == '=':
		return lex.takeTokenVal(tokenNe)
	case ch == '<' && peekCh == '=':
		return lex.takeTokenVal(tokenLe)
	case ch == '<':
		return lex.tokenVal(tokenLt)
	case ch == '>' && peekCh == '=':
		return lex.takeTokenVal(tokenGe)
	case ch == '>':
		return lex.tokenVal(tokenGt)
	case ch == '.' && unicode.IsDigit(peekCh):
		return lex.parseNumber(ch)
	case ch == '+':
		return lex.tokenVal(tokenAdd)
	case ch == '-':
		return lex.tokenVal(tokenMinus)
	case ch == '*':
		return lex.tokenVal(tokenMultiply)
	case ch == '/':
		return lex.tokenVal(tokenDivide)
	case ch == ',':
		return lex.tokenVal(tokenComma)
	case ch == '(':
		return lex.tokenVal(tokenOpenParen)
	case ch == ')':
		return lex.tokenVal(tokenCloseParen)
	case ch == '[':
		return lex.tokenVal(tokenOpenBracket)
	case ch == ']':
		return lex.tokenVal(tokenCloseBracket)
	case unicode.IsDigit(ch):
		return lex.parseNumber(ch)
	case unicode.IsLetter(ch) || ch == '_':
		return lex.parseIdentifier(ch)
	}
	return nil, lex.errf("unexpected character %v", string(ch))
}

func (lex *lexer) parseIdentifier(start rune) (*token, error) {
	linfo := lex.LineInfo
	var ident bytes.Buffer
	if _, err := ident.WriteRune(start); err != nil {
		return nil, err
	}

	for {
		if peekCh := lex.peek(); unicode.IsLetter(peekCh) || unicode.IsDigit(peekCh) || peekCh == '_' {
			if ch, err := lex.next(); err != nil {
				return nil, err
			} else if _, err := ident.WriteRune(ch); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}

	strVal := ident.String()
	if kw, ok := keywords[strVal]; ok {
		return &token{Kind: kw, LineInfo: linfo}, nil
	}
	return &token{
		Kind:      tokenIdentifier,
		StringVal: strVal,
		LineInfo:  linfo,
	}, nil
}

func (lex *lexer) parseNumber(start rune) (*token, error) {
	linfo := lex.LineInfo
	var number bytes.Buffer
	isFloat := false

	if start != '.' {
		if _, err := number.WriteRune(start); err != nil {
			return nil, lex.err(err)
		}
		if err := lex.consumeDigits(&number); err != nil {
			return nil, err
		}
		if peekCh := lex.peek(); peekCh == '.' {
			isFloat = true
			if err := lex.writeNext(&number); err != nil {
				return nil, err
			} else if err := lex.consumeDigits(&number); err != nil {
				return nil, err
			}
		}
	} else {
		number.WriteString("0.")
		isFloat = true
		if err := lex.consumeDigits(&number); err != nil {
			return nil, err
		}
	}

	if peekCh := lex.peek(); peekCh == 'e' || peekCh == 'E' {
		isFloat = true
		if err := lex.parseExponent(&number); err != nil {
			return nil, err
		}
	}

	if isFloat {
		num, err := strconv.ParseFloat(number.String(), 64)
		if err != nil {
			return nil, lex.err(fmt.Errorf("parse float: %w", errors.Unwrap(err)))
		}
		return &token{
			Kind:     tokenFloat,
			FloatVal: num,
			LineInfo: linfo,
		}, nil
	}

	strNum := strings.TrimLeft(number.String(), "0")
	if len(strNum) == 0 {
		return &token{Kind: tokenInteger, IntVal: 0, LineInfo: linfo}, nil
	}

	ivalue, err := strconv.ParseInt(strNum, 10, 64)
	if err != nil {
		return nil, lex.err(fmt.Errorf("parse int: %w", errors.Unwrap(err)))
	}
	return &token{
		Kind:     tokenInteger,
		IntVal:   ivalue,
		LineInfo: linfo,
	}, nil
}

func (lex *lexer) consumeDigits(number *bytes.Buffer) error {
	for unicode.IsDigit(lex.peek()) {
		if err := lex.writeNext(number); err != nil {
			return err
		}
	}
	return nil
}

func (lex *lexer) parseExponent(number *bytes.Buffer) error {
	if err := lex.writeNext(number); err != nil {
		return err
	}
	if tk := lex.peek(); tk == '-' || tk == '+' {
		if err := lex.writeNext(number); err != nil {
			return err
		}
	}
	if !unicode.IsDigit(lex.peek()) {
		return lex.errf("malformed number near %q", number.String())
	}
	return lex.consumeDigits(number)
}

func (lex *lexer) writeNext(number *bytes.Buffer) error {
	if ch, err := lex.next(); err != nil {
		return err
	} else if _, err := number.WriteRune(ch); err != nil {
		return lex.err(err)
	}
	return nil
}
