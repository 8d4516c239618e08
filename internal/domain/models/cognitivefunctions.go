// internal/domain/models/cognitivefunctions.go
package models

import "strings"

// FunctionCode identifies one of the eight cognitive functions: a process
// letter (N, S, T, F) followed by its attitude (e or i).
type FunctionCode string

// Canonical cognitive function codes.
const (
	Ne FunctionCode = "Ne"
	Ni FunctionCode = "Ni"
	Se FunctionCode = "Se"
	Si FunctionCode = "Si"
	Te FunctionCode = "Te"
	Ti FunctionCode = "Ti"
	Fe FunctionCode = "Fe"
	Fi FunctionCode = "Fi"
)

// FunctionsPerType is the length of every type's function stack.
const FunctionsPerType = 8

var allFunctions = []FunctionCode{Ne, Ni, Se, Si, Te, Ti, Fe, Fi}

// AllFunctions returns the eight function codes.
func AllFunctions() []FunctionCode {
	out := make([]FunctionCode, len(allFunctions))
	copy(out, allFunctions)
	return out
}

// Valid reports whether f is one of the eight canonical codes.
func (f FunctionCode) Valid() bool {
	for _, known := range allFunctions {
		if f == known {
			return true
		}
	}
	return false
}

// Attitude returns "e" for extraverted and "i" for introverted functions,
// or "" for an unknown code.
func (f FunctionCode) Attitude() string {
	if !f.Valid() {
		return ""
	}
	return string(f[1])
}

func (f FunctionCode) String() string { return string(f) }

// ParseFunction accepts a function code in any letter case ("ni", "NI",
// " Ni ") and returns its canonical form.
func ParseFunction(s string) (FunctionCode, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return "", invalidArgumentf("unknown cognitive function %q", s)
	}
	f := FunctionCode(strings.ToUpper(s[:1]) + strings.ToLower(s[1:]))
	if !f.Valid() {
		return "", invalidArgumentf("unknown cognitive function %q", s)
	}
	return f, nil
}

// ParseFunctionList parses a comma-separated list such as "Ni,Te".
// Empty segments are skipped; an empty input yields an empty list.
func ParseFunctionList(s string) ([]FunctionCode, error) {
	var out []FunctionCode
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseFunction(part)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// JoinFunctions is the inverse of ParseFunctionList.
func JoinFunctions(fns []FunctionCode) string {
	parts := make([]string, len(fns))
	for i, f := range fns {
		parts[i] = string(f)
	}
	return strings.Join(parts, ",")
}
