package repl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/tanema/exprcheck/src/check"
)

const (
	prompt         = "> "
	continuePrompt = "...> "
)

// Run reads inputs from the terminal until the user quits or ctx is done.
// Expressions may span several lines, a line that leaves the expression
// unfinished switches to the continuation prompt. ctrl-c clears a pending
// buffer and quits on an empty one.
func Run(ctx context.Context, s *Session) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
		AutoComplete:    completer(),
		Stdout:          s.Out,
		Stderr:          s.Err,
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	stop := context.AfterFunc(ctx, func() { _ = rl.Close() })
	defer stop()

	buf := bytes.NewBuffer(nil)
	for {
		src, err := rl.Readline()
		if ctx.Err() != nil {
			return ctx.Err()
		} else if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if buf.Len() > 0 {
					rl.SetPrompt(prompt)
					buf.Reset()
					fmt.Fprint(s.Err, "Press ctrl-c again to quit.\n")
					continue
				}
				return nil
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			s.Report(err)
			continue
		}

		if buf.Len() == 0 && strings.TrimSpace(src) == "" {
			continue
		}
		if _, err := buf.WriteString(src + "\n"); err != nil {
			s.Report(err)
			continue
		}

		err = s.Eval(buf.String())
		if errors.Is(err, io.EOF) && !strings.HasPrefix(strings.TrimSpace(buf.String()), ":") {
			rl.SetPrompt(continuePrompt)
			continue
		}
		rl.SetPrompt(prompt)
		buf.Reset()
		if errors.Is(err, ErrQuit) {
			return nil
		} else if err != nil {
			s.Report(err)
		}
	}
}

func completer() *readline.PrefixCompleter {
	domains := []readline.PrefixCompleterInterface{}
	for _, name := range check.DomainNames() {
		domains = append(domains, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem(":help"),
		readline.PcItem(":domain", domains...),
		readline.PcItem(":let"),
		readline.PcItem(":unset"),
		readline.PcItem(":env"),
		readline.PcItem(":dump"),
		readline.PcItem(":free"),
		readline.PcItem(":quit"),
	)
}
