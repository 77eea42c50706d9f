// Package lerrors is a unified errors package for lexing, parsing, configuration
// and type checking so that failures can be formatted and handled in a uniform
// way by callers.
package lerrors

import (
	"fmt"
)

type (
	// ErrorKind is an enum to describe where the error originates from.
	ErrorKind int
	// Error captures all errors raised while reading and checking expressions.
	// It distinguishes between lexer, parser, config and type errors and will
	// format them accordingly.
	Error struct {
		Line     int64
		Column   int64
		Kind     ErrorKind
		Err      error
		Filename string
	}
)

const (
	// TypeErr is an error that originates from the type checker.
	TypeErr ErrorKind = iota
	// ParserErr is an error that originates from the parser.
	ParserErr
	// LexerErr is an error that originates from the lexer.
	LexerErr
	// ConfigErr is an error raised while loading a session configuration.
	ConfigErr
)

func (kind ErrorKind) String() string {
	switch kind {
	case TypeErr:
		return "type"
	case ParserErr:
		return "parse"
	case LexerErr:
		return "lex"
	case ConfigErr:
		return "config"
	default:
		return "unknown"
	}
}

func (err *Error) Error() string {
	switch err.Kind {
	case TypeErr:
		if err.Line == 0 {
			return fmt.Sprintf("Type Error: %v", err.Err)
		}
		return fmt.Sprintf("Type Error: %s:%v:%v %v", err.Filename, err.Line, err.Column, err.Err)
	case ParserErr:
		return fmt.Sprintf(`Parse Error: %s:%v:%v %v`, err.Filename, err.Line, err.Column, err.Err)
	case LexerErr:
		return fmt.Sprintf("Lex Error: %v", err.Err.Error())
	case ConfigErr:
		return fmt.Sprintf("Config Error: %s %v", err.Filename, err.Err)
	default:
		return err.Err.Error()
	}
}

// Unwrap exposes the underlying cause so errors.Is and errors.As can inspect it.
func (err *Error) Unwrap() error { return err.Err }
