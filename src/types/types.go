package types

import (
	"fmt"
	"strings"
)

type (
	// Type is a general interface for all type values.
	Type interface {
		fmt.Stringer
		Equal(other Type) bool
	}
	// Simple describes a scalar tag type such as int or bool.
	Simple struct{ Name string }
)

const (
	// NameInt is a label for the int type.
	NameInt = "int"
	// NameReal is a label for the real type.
	NameReal = "real"
	// NameBool is a label for the bool type.
	NameBool = "bool"
)

var (
	// Int is the type of integer literals.
	Int = &Simple{Name: NameInt}
	// Real is the type of real literals and of every scalar arithmetic result.
	Real = &Simple{Name: NameReal}
	// Bool is the type of comparisons and boolean connectives.
	Bool = &Simple{Name: NameBool}
	// DefaultDefns is a collection of scalar types that exist by default.
	DefaultDefns = map[string]Type{
		NameInt:  Int,
		NameReal: Real,
		NameBool: Bool,
	}
)

// Equal will check if the other type is the same scalar tag.
func (t *Simple) Equal(other Type) bool {
	st, isSimple := other.(*Simple)
	return isSimple && st.Name == t.Name
}

func (t *Simple) String() string { return t.Name }

// ByName looks up a default scalar type by its name.
func ByName(name string) (Type, bool) {
	defn, ok := DefaultDefns[name]
	return defn, ok
}

// Equal compares two types, nil only equals nil.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// EqualAll reports whether both lists have the same length and are pointwise equal.
func EqualAll(as, bs []Type) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !Equal(as[i], bs[i]) {
			return false
		}
	}
	return true
}

// Format renders a list of types as a parenthesised, comma separated list.
func Format(defns []Type) string {
	parts := make([]string, len(defns))
	for i, d := range defns {
		if d == nil {
			parts[i] = "<nil>"
			continue
		}
		parts[i] = d.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}
