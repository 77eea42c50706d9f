// Package repl is the interactive front end of the checker. A Session holds
// the environment and domain between inputs, each input is either a command
// or an expression to type.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kr/pretty"
	"github.com/lestrrat-go/strftime"

	"github.com/tanema/exprcheck/src/ast"
	"github.com/tanema/exprcheck/src/check"
	"github.com/tanema/exprcheck/src/conf"
	"github.com/tanema/exprcheck/src/parse"
)

// ErrQuit is returned by Eval when the input asked to end the session.
var ErrQuit = errors.New("quit")

const helpText = `Enter an expression to print its type, or one of:
  :help               show this message
  :domain [name]      show or switch the domain (%v)
  :let name type      declare a symbol, e.g. :let x [0, inf)
  :unset name         forget a symbol
  :env                list declared symbols
  :dump expr          print the typed tree of expr
  :free expr          list the free symbols of expr
  :quit               leave the session
`

// Session is the state kept between inputs.
type Session struct {
	Env      check.Env
	Domain   check.Domain
	Out      io.Writer
	Err      io.Writer
	Filename string
	strf     *strftime.Strftime
	now      func() time.Time
}

// New creates a session from a configuration, writing results to out and
// diagnostics to errOut.
func New(cfg *conf.Config, out, errOut io.Writer) (*Session, error) {
	env, err := cfg.Environment()
	if err != nil {
		return nil, err
	}
	sess := &Session{
		Env:      env,
		Domain:   cfg.DomainValue(),
		Out:      out,
		Err:      errOut,
		Filename: "<repl>",
		now:      time.Now,
	}
	if err := sess.SetTimeFormat(cfg.TimeFormat); err != nil {
		return nil, err
	}
	return sess, nil
}

// SetTimeFormat sets the strftime pattern diagnostics are prefixed with, an
// empty pattern disables the prefix.
func (s *Session) SetTimeFormat(format string) error {
	if format == "" {
		s.strf = nil
		return nil
	}
	strf, err := strftime.New(format)
	if err != nil {
		return fmt.Errorf("invalid time format %q: %w", format, err)
	}
	s.strf = strf
	return nil
}

// Check parses and types a single expression against the session state.
func (s *Session) Check(filename string, src io.Reader) (ast.Typed, error) {
	node, err := parse.Expr(filename, src)
	if err != nil {
		return nil, err
	}
	checker := check.New(s.Env, s.Domain)
	checker.Filename = filename
	return checker.Infer(node)
}

// Eval runs one input. Expressions print their type, commands print their
// output. Incomplete expressions return io.EOF so the caller can read more.
func (s *Session) Eval(line string) error {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		typed, err := s.Check(s.Filename, strings.NewReader(line))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(s.Out, typed.TypeOf())
		return err
	}
	cmd, rest, _ := strings.Cut(line[1:], " ")
	rest = strings.TrimSpace(rest)
	switch cmd {
	case "help", "h", "?":
		_, err := fmt.Fprintf(s.Out, helpText, strings.Join(check.DomainNames(), ", "))
		return err
	case "quit", "q", "exit":
		return ErrQuit
	case "domain":
		return s.domain(rest)
	case "let":
		return s.let(rest)
	case "unset":
		if rest == "" {
			return errors.New("usage: :unset name")
		}
		s.Env = s.Env.Without(rest)
		return nil
	case "env":
		for _, name := range s.Env.Names() {
			defn, _ := s.Env.Lookup(name)
			if _, err := fmt.Fprintf(s.Out, "%v : %v\n", name, defn); err != nil {
				return err
			}
		}
		return nil
	case "dump":
		typed, err := s.Check(s.Filename, strings.NewReader(rest))
		if err != nil {
			return err
		}
		_, err = pretty.Fprintf(s.Out, "%# v\n", typed)
		return err
	case "free":
		node, err := parse.String(rest)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(s.Out, strings.Join(ast.FreeSymbols(node), " "))
		return err
	default:
		return fmt.Errorf("unknown command :%v, try :help", cmd)
	}
}

func (s *Session) domain(name string) error {
	if name == "" {
		_, err := fmt.Fprintln(s.Out, s.Domain.Name())
		return err
	}
	dom, ok := check.DomainByName(name)
	if !ok {
		return fmt.Errorf("unknown domain %q, expected one of %v", name, check.DomainNames())
	}
	s.Domain = dom
	return nil
}

func (s *Session) let(decl string) error {
	name, annotation, found := strings.Cut(decl, " ")
	if !found || name == "" || strings.TrimSpace(annotation) == "" {
		return errors.New("usage: :let name type")
	}
	defn, err := parse.Type(annotation)
	if err != nil {
		return err
	}
	s.Env = s.Env.With(name, defn)
	return nil
}

// Report writes err to the diagnostic writer, prefixed with a timestamp when
// a time format is set.
func (s *Session) Report(err error) {
	if s.strf != nil {
		now := time.Now
		if s.now != nil {
			now = s.now
		}
		fmt.Fprintf(s.Err, "[%v] %v\n", s.strf.FormatString(now()), err)
		return
	}
	fmt.Fprintln(s.Err, err)
}
