package conf

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/lestrrat-go/strftime"
	"gopkg.in/yaml.v3"

	"github.com/tanema/exprcheck/src/check"
	"github.com/tanema/exprcheck/src/lerrors"
	"github.com/tanema/exprcheck/src/parse"
	"github.com/tanema/exprcheck/src/types"
)

// Config is a session file. It selects the domain expressions are checked in
// and declares the types of their free symbols.
//
//	domain: interval
//	time_format: "%H:%M:%S"
//	env:
//	  x: "[3, 8]"
//	  z: "(0, inf]"
type Config struct {
	// Domain is one of the built in domain names, scalar by default.
	Domain string `yaml:"domain,omitempty"`
	// TimeFormat is a strftime pattern that prefixes diagnostics when set.
	TimeFormat string `yaml:"time_format,omitempty"`
	// Env maps symbol names to type annotations such as real, matrix(2, 3)
	// or [0, inf).
	Env map[string]string `yaml:"env,omitempty"`

	path string
}

// Load reads and parses a session file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configErr(path, fmt.Errorf("reading config: %w", err))
	}
	return Parse(data, path)
}

// Parse parses session file content. The path is only used in errors.
func Parse(data []byte, path string) (*Config, error) {
	cfg := Config{path: path}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configErr(path, fmt.Errorf("parsing config: %w", err))
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default is the configuration used when no session file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Domain == "" {
		c.Domain = DEFAULTDOMAIN
	}
	if c.Env == nil {
		c.Env = map[string]string{}
	}
}

// Validate checks the domain, time format and every declared type.
func (c *Config) Validate() error {
	if _, ok := check.DomainByName(c.Domain); !ok {
		return configErr(c.path, fmt.Errorf("unknown domain %q, expected one of %v", c.Domain, check.DomainNames()))
	}
	if c.TimeFormat != "" {
		if _, err := strftime.New(c.TimeFormat); err != nil {
			return configErr(c.path, fmt.Errorf("invalid time_format %q: %w", c.TimeFormat, err))
		}
	}
	_, err := c.Environment()
	return err
}

// DomainValue resolves the configured domain.
func (c *Config) DomainValue() check.Domain {
	if dom, ok := check.DomainByName(c.Domain); ok {
		return dom
	}
	return check.Scalar()
}

// Environment parses every declared type into a checker environment.
func (c *Config) Environment() (check.Env, error) {
	defns := make(map[string]types.Type, len(c.Env))
	for _, name := range slices.Sorted(maps.Keys(c.Env)) {
		defn, err := parse.Type(c.Env[name])
		if err != nil {
			return check.Env{}, configErr(c.path, fmt.Errorf("env %v: %w", name, unwrapParse(err)))
		}
		defns[name] = defn
	}
	return check.NewEnv(defns), nil
}

// Declare records a symbol annotation, checking that it parses first.
func (c *Config) Declare(name, annotation string) error {
	if _, err := parse.Type(annotation); err != nil {
		return configErr(c.path, fmt.Errorf("env %v: %w", name, unwrapParse(err)))
	}
	if c.Env == nil {
		c.Env = map[string]string{}
	}
	c.Env[name] = annotation
	return nil
}

func configErr(path string, err error) error {
	return &lerrors.Error{Kind: lerrors.ConfigErr, Filename: path, Err: err}
}

// unwrapParse drops the positional wrapper of a type annotation error since
// positions inside a one line annotation add nothing to the config error.
func unwrapParse(err error) error {
	var exErr *lerrors.Error
	if errors.As(err, &exErr) && exErr.Err != nil {
		return exErr.Err
	}
	return err
}
