// Package viewstate holds the deck's view state as an immutable value.
//
// Every transition returns a new State; the receiver is never modified.
// Slices handed out by State are copies.
package viewstate

import (
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dalemusser/mbticards/internal/app/system/ranking"
	"github.com/dalemusser/mbticards/internal/app/system/typefilter"
	"github.com/dalemusser/mbticards/internal/domain/models"
)

// MaxSortPriority caps the sort priority length. Keys past the second are
// dropped, so types tied on the first two keys (ISTP and ISFP under Ni,Ne)
// stay in catalog order.
const MaxSortPriority = 2

// Query parameter names used by Query and FromQuery.
const (
	ParamFilter = "filter"
	ParamSort   = "sort"
)

// State is a snapshot of the deck.
type State struct {
	sortPriority []models.FunctionCode
	filter       string
	orderedTypes []models.TypeCode
}

// New returns the initial state: no sort priority, catalog order, and the
// normalized form of filter.
func New(filter string) State {
	return State{
		filter:       typefilter.Normalize(filter),
		orderedTypes: models.AllTypes(),
	}
}

// WithFilter replaces the filter with the normalized form of raw.
func (s State) WithFilter(raw string) State {
	return State{
		sortPriority: s.SortPriority(),
		filter:       typefilter.Normalize(raw),
		orderedTypes: s.OrderedTypes(),
	}
}

// WithSortPriority replaces the sort priority wholesale and recomputes the
// type order. Entries beyond MaxSortPriority are dropped.
func (s State) WithSortPriority(fns []models.FunctionCode) State {
	if len(fns) > MaxSortPriority {
		fns = fns[:MaxSortPriority]
	}
	priority := make([]models.FunctionCode, len(fns))
	copy(priority, fns)
	return State{
		sortPriority: priority,
		filter:       s.filter,
		orderedTypes: ranking.OrderedBy(priority),
	}
}

// SortPriority returns the current sort keys, highest priority first.
func (s State) SortPriority() []models.FunctionCode {
	out := make([]models.FunctionCode, len(s.sortPriority))
	copy(out, s.sortPriority)
	return out
}

// Filter returns the canonical filter string.
func (s State) Filter() string { return s.filter }

// OrderedTypes returns all sixteen types in the current order. The zero
// State reports catalog order.
func (s State) OrderedTypes() []models.TypeCode {
	if s.orderedTypes == nil {
		return models.AllTypes()
	}
	out := make([]models.TypeCode, len(s.orderedTypes))
	copy(out, s.orderedTypes)
	return out
}

// VisibleTypes returns the ordered types that pass the filter.
func (s State) VisibleTypes() []models.TypeCode {
	var out []models.TypeCode
	for _, t := range s.OrderedTypes() {
		if typefilter.Matches(t, s.filter) {
			out = append(out, t)
		}
	}
	return out
}

// SortRank returns the 1-based priority of f, or 0 when f is not a sort key.
func (s State) SortRank(f models.FunctionCode) int {
	for i, p := range s.sortPriority {
		if p == f {
			return i + 1
		}
	}
	return 0
}

// Query encodes the state as URL query parameters. Empty values are
// omitted so the initial state encodes to an empty query.
func (s State) Query() url.Values {
	q := url.Values{}
	if s.filter != "" {
		q.Set(ParamFilter, s.filter)
	}
	if len(s.sortPriority) > 0 {
		q.Set(ParamSort, models.JoinFunctions(s.sortPriority))
	}
	return q
}

// URL returns path with the state's query appended.
func (s State) URL(path string) string {
	if enc := s.Query().Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

// FromQuery rebuilds a State from query parameters. The filter is
// normalized; an unknown function in sort is models.ErrInvalidArgument.
func FromQuery(q url.Values) (State, error) {
	st := New(q.Get(ParamFilter))
	raw := strings.TrimSpace(q.Get(ParamSort))
	if raw == "" {
		return st, nil
	}
	fns, err := models.ParseFunctionList(raw)
	if err != nil {
		return State{}, errors.Wrapf(err, "parse %s parameter", ParamSort)
	}
	return st.WithSortPriority(fns), nil
}
