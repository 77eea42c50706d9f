package check

import (
	"maps"
	"slices"

	"github.com/tanema/exprcheck/src/types"
)

// Env maps free symbol names to their declared types. An Env is never changed
// after it is created, With returns a new one instead.
type Env struct {
	defns map[string]types.Type
}

// NewEnv creates an environment holding a copy of defns.
func NewEnv(defns map[string]types.Type) Env {
	return Env{defns: maps.Clone(defns)}
}

// Lookup finds the declared type of name.
func (env Env) Lookup(name string) (types.Type, bool) {
	defn, ok := env.defns[name]
	return defn, ok
}

// With returns a copy of the environment with name bound to defn.
func (env Env) With(name string, defn types.Type) Env {
	defns := make(map[string]types.Type, len(env.defns)+1)
	maps.Copy(defns, env.defns)
	defns[name] = defn
	return Env{defns: defns}
}

// Without returns a copy of the environment without name.
func (env Env) Without(name string) Env {
	defns := maps.Clone(env.defns)
	delete(defns, name)
	return Env{defns: defns}
}

// Names lists the bound names in sorted order.
func (env Env) Names() []string {
	return slices.Sorted(maps.Keys(env.defns))
}

// Len is the number of bound names.
func (env Env) Len() int { return len(env.defns) }
