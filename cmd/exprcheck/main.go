// Package main is the main entrypoint to the exprcheck application
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"

	"github.com/tanema/exprcheck/src/conf"
	"github.com/tanema/exprcheck/src/repl"
)

type declFlags []string

func (d *declFlags) String() string { return strings.Join(*d, ",") }

func (d *declFlags) Set(val string) error {
	if !strings.Contains(val, "=") {
		return fmt.Errorf("expected name=type but got %q", val)
	}
	*d = append(*d, val)
	return nil
}

var (
	sess        *repl.Session
	domainName  string
	configPath  string
	checkExpr   string
	decls       declFlags
	interactive bool
	dumpTree    bool
	timeFormat  string
	showVersion bool
	failed      bool
)

func init() {
	flag.StringVar(&domainName, "d", "", "domain to check in (scalar, matrix, interval)")
	flag.StringVar(&configPath, "c", "", "session config file, defaults to ./"+conf.CONFIGFILENAME+" when present")
	flag.StringVar(&checkExpr, "e", "", "check expression 'expr'")
	flag.Var(&decls, "s", "declare a symbol as name=type, may be repeated")
	flag.BoolVar(&interactive, "i", false, "enter interactive mode after checking")
	flag.BoolVar(&dumpTree, "dump", false, "print the typed tree instead of the type")
	flag.StringVar(&timeFormat, "T", "", "strftime format to prefix diagnostics with, e.g. "+conf.DEFAULTTIMEFORMAT)
	flag.BoolVar(&showVersion, "v", false, "show version information")
}

func main() {
	flag.Usage = printUsage
	flag.Parse()

	cfg, err := loadConfig()
	checkErr(err)
	sess, err = repl.New(cfg, os.Stdout, os.Stderr)
	checkErr(err)

	args := flag.Args()
	if showVersion {
		printVersion()
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		checkLines("<stdin>", os.Stdin)
	} else if checkExpr != "" {
		checkSrc("<string>", strings.NewReader(checkExpr))
	} else if len(args) > 0 {
		for _, path := range args {
			checkFile(path)
		}
	} else if !showVersion {
		runREPL()
	}
	if interactive && isatty.IsTerminal(os.Stdin.Fd()) {
		runREPL()
	}
	if failed {
		os.Exit(1)
	}
}

func loadConfig() (*conf.Config, error) {
	cfg := conf.Default()
	if configPath != "" {
		loaded, err := conf.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if info, err := os.Stat(conf.CONFIGFILENAME); err == nil && !info.IsDir() {
		loaded, err := conf.Load(conf.CONFIGFILENAME)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if domainName != "" {
		cfg.Domain = domainName
	}
	if timeFormat != "" {
		cfg.TimeFormat = timeFormat
	}
	for _, decl := range decls {
		name, annotation, _ := strings.Cut(decl, "=")
		if err := cfg.Declare(strings.TrimSpace(name), annotation); err != nil {
			return nil, err
		}
	}
	return cfg, cfg.Validate()
}

func printVersion() {
	fmt.Fprintf(os.Stderr, "%v\n", conf.FullVersion())
}

func printUsage() {
	printVersion()
	fmt.Fprint(os.Stderr, "\nUsage: exprcheck [options] [file ...]\n")
	flag.PrintDefaults()
}

func checkErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func checkFile(path string) {
	src, err := os.Open(path)
	if err != nil {
		sess.Report(err)
		failed = true
		return
	}
	defer func() { _ = src.Close() }()
	checkSrc(path, src)
}

// checkLines checks every non blank line of src as its own expression.
func checkLines(filename string, src io.Reader) {
	scanner := bufio.NewScanner(src)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		checkSrc(fmt.Sprintf("%v:%v", filename, lineNo), strings.NewReader(line))
	}
	if err := scanner.Err(); err != nil {
		sess.Report(err)
		failed = true
	}
}

func checkSrc(filename string, src io.Reader) {
	typed, err := sess.Check(filename, src)
	if errors.Is(err, io.EOF) {
		err = fmt.Errorf("%v: incomplete expression", filename)
	}
	if err != nil {
		sess.Report(err)
		failed = true
		return
	}
	if dumpTree {
		_, _ = pretty.Println(typed)
		return
	}
	fmt.Fprintln(os.Stdout, typed.TypeOf())
}

func runREPL() {
	printVersion()
	fmt.Fprint(os.Stderr, "Press ctrl-c to quit or clear current buffer, :help for commands.\n")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	checkErr(repl.Run(ctx, sess))
}
