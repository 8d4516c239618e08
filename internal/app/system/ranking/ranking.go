// Package ranking orders personality types by a prioritized list of
// cognitive functions.
//
// Each priority position p contributes (N+1)^(len-1-p) times the strength
// of that function in the type's stack, where strength is N for the
// dominant function down to 1 for the weakest. Because a lower-priority
// term never reaches one unit of the next higher weight, earlier sort keys
// dominate later ones strictly.
//
// The rank fits an int for priority lists of up to 19 entries; the deck
// never uses more than two.
package ranking

import (
	"sort"

	"github.com/dalemusser/mbticards/internal/domain/models"
)

// Entry is a type together with its computed rank.
type Entry struct {
	Type models.TypeCode
	Rank int
}

// RankOf computes the sort rank of t under priority.
//
// A function code that does not appear in the type's stack contributes 0;
// an unrecognised sort key is not an error. An unknown type code is
// models.ErrInvalidArgument.
func RankOf(priority []models.FunctionCode, t models.TypeCode) (int, error) {
	stack, err := models.FunctionsOf(t)
	if err != nil {
		return 0, err
	}
	return rankStack(priority, stack), nil
}

func rankStack(priority []models.FunctionCode, stack []models.FunctionCode) int {
	n := len(stack)
	rank := 0
	for p, fn := range priority {
		weight := pow(n+1, len(priority)-1-p)
		for i, candidate := range stack {
			if candidate == fn {
				rank += weight * (n - i)
				break
			}
		}
	}
	return rank
}

func pow(base, exp int) int {
	out := 1
	for ; exp > 0; exp-- {
		out *= base
	}
	return out
}

// Ranked returns every catalog type with its rank, highest first. Types
// with equal rank keep catalog order.
func Ranked(priority []models.FunctionCode) []Entry {
	types := models.AllTypes()
	entries := make([]Entry, len(types))
	for i, t := range types {
		// catalog types always resolve
		stack, _ := models.FunctionsOf(t)
		entries[i] = Entry{Type: t, Rank: rankStack(priority, stack)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rank > entries[j].Rank
	})
	return entries
}

// OrderedBy returns all sixteen types sorted by rank, descending. An empty
// priority yields catalog order.
func OrderedBy(priority []models.FunctionCode) []models.TypeCode {
	entries := Ranked(priority)
	out := make([]models.TypeCode, len(entries))
	for i, e := range entries {
		out[i] = e.Type
	}
	return out
}
