// Package typefilter canonicalises and evaluates letter-based type filters
// such as "IN", "EST" or "INFJ,EST" (comma means OR).
package typefilter

import (
	"strings"

	"github.com/dalemusser/mbticards/internal/domain/models"
)

// letters is the canonical walk order. Adjacent entries are opposing
// pairs: I/E, S/N, F/T, P/J.
var letters = [8]byte{'I', 'E', 'S', 'N', 'F', 'T', 'P', 'J'}

func opposite(i int) int {
	if i%2 == 0 {
		return i + 1
	}
	return i - 1
}

// Normalize returns the canonical form of raw. Each comma-separated clause
// keeps the filter letters it mentions, uppercased, once each, in I E S N F
// T P J order. A letter whose opposite also occurs in the clause is
// dropped along with the opposite. Any other character is ignored.
// Normalize is idempotent.
func Normalize(raw string) string {
	clauses := strings.Split(raw, ",")
	for i, c := range clauses {
		clauses[i] = normalizeClause(c)
	}
	return strings.Join(clauses, ",")
}

func normalizeClause(clause string) string {
	var used [len(letters)]bool
	for _, r := range strings.ToUpper(clause) {
		for i, l := range letters {
			if r == rune(l) {
				used[i] = true
			}
		}
	}

	var b strings.Builder
	for i, l := range letters {
		if used[i] && !used[opposite(i)] {
			b.WriteByte(l)
		}
	}
	return b.String()
}

// Matches reports whether t passes filter. A filter containing commas
// matches when any clause matches; an empty clause matches every type.
// Otherwise each character of the filter must occur somewhere in the type
// code, in any position.
func Matches(t models.TypeCode, filter string) bool {
	if strings.Contains(filter, ",") {
		for _, clause := range strings.Split(filter, ",") {
			if Matches(t, clause) {
				return true
			}
		}
		return false
	}
	for _, r := range filter {
		if !strings.ContainsRune(string(t), r) {
			return false
		}
	}
	return true
}

// Clauses splits a canonical filter into its non-empty clauses.
func Clauses(filter string) []string {
	var out []string
	for _, c := range strings.Split(filter, ",") {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Adjusted reports whether normalising raw changed more than letter case.
// Reordered letters count as a change.
func Adjusted(raw string) bool {
	return Normalize(raw) != strings.ToUpper(raw)
}
