// internal/domain/models/personalitytypes.go
package models

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// TypeCode is one of the sixteen four-letter personality type codes.
type TypeCode string

func (t TypeCode) String() string { return string(t) }

// typeStack pairs a type with its function stack, strongest first.
// The stacks are reference data and must stay verbatim.
type typeStack struct {
	Type      TypeCode
	Functions [FunctionsPerType]FunctionCode
}

// catalog lists every type in its natural display order.
var catalog = []typeStack{
	{"INTP", [FunctionsPerType]FunctionCode{Ti, Ne, Si, Fe, Te, Ni, Se, Fi}},
	{"ISTP", [FunctionsPerType]FunctionCode{Ti, Se, Ni, Fe, Te, Si, Ne, Fi}},
	{"ESTP", [FunctionsPerType]FunctionCode{Se, Ti, Fe, Ni, Si, Te, Fi, Ne}},
	{"ESFP", [FunctionsPerType]FunctionCode{Se, Fi, Te, Ni, Si, Fe, Ti, Ne}},
	{"ISFP", [FunctionsPerType]FunctionCode{Fi, Se, Ni, Te, Fe, Si, Ne, Ti}},
	{"INFP", [FunctionsPerType]FunctionCode{Fi, Ne, Si, Te, Fe, Ni, Se, Ti}},
	{"ENFP", [FunctionsPerType]FunctionCode{Ne, Fi, Te, Si, Ni, Fe, Ti, Se}},
	{"ENTP", [FunctionsPerType]FunctionCode{Ne, Ti, Fe, Si, Ni, Te, Fi, Se}},
	{"ENTJ", [FunctionsPerType]FunctionCode{Te, Ni, Se, Fi, Ti, Ne, Si, Fe}},
	{"ESTJ", [FunctionsPerType]FunctionCode{Te, Si, Ne, Fi, Ti, Se, Ni, Fe}},
	{"ISTJ", [FunctionsPerType]FunctionCode{Si, Te, Fi, Ne, Se, Ti, Fe, Ni}},
	{"ISFJ", [FunctionsPerType]FunctionCode{Si, Fe, Ti, Ne, Se, Fi, Te, Ni}},
	{"ESFJ", [FunctionsPerType]FunctionCode{Fe, Si, Ne, Ti, Fi, Se, Ni, Te}},
	{"ENFJ", [FunctionsPerType]FunctionCode{Fe, Ni, Se, Ti, Fi, Ne, Si, Te}},
	{"INFJ", [FunctionsPerType]FunctionCode{Ni, Fe, Ti, Se, Ne, Fi, Te, Si}},
	{"INTJ", [FunctionsPerType]FunctionCode{Ni, Te, Fi, Se, Ne, Ti, Fe, Si}},
}

func lookup(t TypeCode) (*typeStack, bool) {
	for i := range catalog {
		if catalog[i].Type == t {
			return &catalog[i], true
		}
	}
	return nil, false
}

// AllTypes returns the sixteen type codes in catalog order.
func AllTypes() []TypeCode {
	out := make([]TypeCode, len(catalog))
	for i, ts := range catalog {
		out[i] = ts.Type
	}
	return out
}

// Valid reports whether t is one of the sixteen catalog types.
func (t TypeCode) Valid() bool {
	_, ok := lookup(t)
	return ok
}

// FunctionsOf returns the function stack of t, strongest first.
// An unknown type is an ErrInvalidArgument.
func FunctionsOf(t TypeCode) ([]FunctionCode, error) {
	ts, ok := lookup(t)
	if !ok {
		return nil, invalidArgumentf("unknown personality type %q", string(t))
	}
	out := make([]FunctionCode, FunctionsPerType)
	copy(out, ts.Functions[:])
	return out, nil
}

// Position returns the 0-based stack index of f within t (0 = strongest).
func Position(t TypeCode, f FunctionCode) (int, bool) {
	ts, ok := lookup(t)
	if !ok {
		return 0, false
	}
	for i, fn := range ts.Functions {
		if fn == f {
			return i, true
		}
	}
	return 0, false
}

// ParseType accepts a type code in any letter case.
func ParseType(s string) (TypeCode, error) {
	t := TypeCode(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", invalidArgumentf("unknown personality type %q", s)
	}
	return t, nil
}

// typeLetters lists the allowed letters for each position of a type code.
var typeLetters = [4]string{"IE", "SN", "FT", "PJ"}

// CheckCatalog verifies the catalog invariants: sixteen distinct,
// well-formed type codes, each with a stack holding every function once.
func CheckCatalog() error {
	return checkCatalog(catalog)
}

func checkCatalog(entries []typeStack) error {
	if len(entries) != 16 {
		return errors.Newf("catalog holds %d types, want 16", len(entries))
	}
	seen := make(map[TypeCode]bool, len(entries))
	for _, ts := range entries {
		if len(ts.Type) != len(typeLetters) {
			return errors.Newf("type %q: want %d letters", ts.Type, len(typeLetters))
		}
		for i, allowed := range typeLetters {
			if !strings.ContainsRune(allowed, rune(ts.Type[i])) {
				return errors.Newf("type %q: letter %d not in %s", ts.Type, i+1, allowed)
			}
		}
		if seen[ts.Type] {
			return errors.Newf("type %q listed twice", ts.Type)
		}
		seen[ts.Type] = true

		used := make(map[FunctionCode]bool, FunctionsPerType)
		for _, f := range ts.Functions {
			if !f.Valid() {
				return errors.Newf("type %q: unknown function %q", ts.Type, f)
			}
			if used[f] {
				return errors.Newf("type %q: function %s repeated", ts.Type, f)
			}
			used[f] = true
		}
	}
	return nil
}
