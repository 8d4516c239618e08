package models

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestAllTypes_CatalogOrder(t *testing.T) {
	want := []TypeCode{
		"INTP", "ISTP", "ESTP", "ESFP", "ISFP", "INFP", "ENFP", "ENTP",
		"ENTJ", "ESTJ", "ISTJ", "ISFJ", "ESFJ", "ENFJ", "INFJ", "INTJ",
	}
	got := AllTypes()
	if len(got) != len(want) {
		t.Fatalf("AllTypes() returned %d types, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllTypes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAllTypes_ReturnsCopy(t *testing.T) {
	a := AllTypes()
	a[0] = "XXXX"
	if AllTypes()[0] != "INTP" {
		t.Error("mutating the returned slice changed the catalog")
	}
}

func TestFunctionsOf_IsPermutation(t *testing.T) {
	for _, tc := range AllTypes() {
		fns, err := FunctionsOf(tc)
		if err != nil {
			t.Fatalf("FunctionsOf(%q) error: %v", tc, err)
		}
		if len(fns) != FunctionsPerType {
			t.Fatalf("FunctionsOf(%q) has %d functions", tc, len(fns))
		}
		seen := make(map[FunctionCode]bool)
		for _, f := range fns {
			if !f.Valid() {
				t.Errorf("%s: invalid function %q", tc, f)
			}
			if seen[f] {
				t.Errorf("%s: duplicate function %q", tc, f)
			}
			seen[f] = true
		}
	}
}

func TestFunctionsOf_KnownStacks(t *testing.T) {
	tests := []struct {
		typ  TypeCode
		want []FunctionCode
	}{
		{"INTJ", []FunctionCode{Ni, Te, Fi, Se, Ne, Ti, Fe, Si}},
		{"ESFP", []FunctionCode{Se, Fi, Te, Ni, Si, Fe, Ti, Ne}},
		{"INTP", []FunctionCode{Ti, Ne, Si, Fe, Te, Ni, Se, Fi}},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			got, err := FunctionsOf(tt.typ)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("position %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFunctionsOf_UnknownType(t *testing.T) {
	for _, bad := range []TypeCode{"", "XXXX", "intj", "INTJX"} {
		_, err := FunctionsOf(bad)
		if err == nil {
			t.Errorf("FunctionsOf(%q) expected error", bad)
			continue
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("FunctionsOf(%q) error %v is not ErrInvalidArgument", bad, err)
		}
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input   string
		want    TypeCode
		wantErr bool
	}{
		{"INTJ", "INTJ", false},
		{"intj", "INTJ", false},
		{"  enfp ", "ENFP", false},
		{"ABCD", "", true},
		{"", "", true},
		{"INT", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("ParseType(%q) error = %v, want ErrInvalidArgument", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseType(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPosition(t *testing.T) {
	if p, ok := Position("INTJ", Te); !ok || p != 1 {
		t.Errorf("Position(INTJ, Te) = %d, %v; want 1, true", p, ok)
	}
	if p, ok := Position("INFJ", Si); !ok || p != 7 {
		t.Errorf("Position(INFJ, Si) = %d, %v; want 7, true", p, ok)
	}
	if _, ok := Position("INFJ", "Xx"); ok {
		t.Error("Position with unknown function should report false")
	}
	if _, ok := Position("XXXX", Ni); ok {
		t.Error("Position with unknown type should report false")
	}
}

func TestCheckCatalog(t *testing.T) {
	if err := CheckCatalog(); err != nil {
		t.Fatalf("CheckCatalog() = %v", err)
	}
}

func TestCheckCatalog_DetectsBrokenEntries(t *testing.T) {
	broken := func(mutate func([]typeStack) []typeStack) []typeStack {
		entries := make([]typeStack, len(catalog))
		copy(entries, catalog)
		return mutate(entries)
	}

	tests := []struct {
		name    string
		entries []typeStack
	}{
		{"missing type", broken(func(e []typeStack) []typeStack { return e[:15] })},
		{"duplicate type", broken(func(e []typeStack) []typeStack { e[1].Type = e[0].Type; return e })},
		{"bad letter", broken(func(e []typeStack) []typeStack { e[0].Type = "IXTP"; return e })},
		{"repeated function", broken(func(e []typeStack) []typeStack { e[0].Functions[7] = e[0].Functions[0]; return e })},
		{"unknown function", broken(func(e []typeStack) []typeStack { e[0].Functions[3] = "Xx"; return e })},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := checkCatalog(tt.entries); err == nil {
				t.Error("checkCatalog() = nil, want error")
			}
		})
	}
}
