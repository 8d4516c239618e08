// internal/app/features/deck/view.go
package deck

import (
	"strconv"

	"github.com/dalemusser/mbticards/internal/app/system/typefilter"
	"github.com/dalemusser/mbticards/internal/app/system/viewdata"
	"github.com/dalemusser/mbticards/internal/app/system/viewstate"
	"github.com/dalemusser/mbticards/internal/domain/models"
)

// functionVM is one function label inside a type panel.
type functionVM struct {
	Code     string
	Tier     int // 1 = dominant … 8 = weakest
	SortRank int // 1 or 2 when the function is a sort key, else 0
	Attitude string
	SortURL  string
}

// Classes returns the CSS classes for the label.
func (f functionVM) Classes() string {
	c := "cognitive-function tier-" + strconv.Itoa(f.Tier) + " attitude-" + f.Attitude
	if f.SortRank > 0 {
		c += " sort-priority-" + strconv.Itoa(f.SortRank)
	}
	return c
}

// panelVM is one type card.
type panelVM struct {
	Type      string
	Functions []functionVM
}

// deckData is the view model for the deck page and its grid snippet.
type deckData struct {
	viewdata.BaseVM

	Filter       string
	Clauses      []string
	SortPriority []string
	SortParam    string
	Hidden       bool
	// SyncInput re-renders the filter input out of band in the grid
	// snippet so the box shows the canonical filter.
	SyncInput bool

	Panels  []panelVM
	Visible int
	Total   int

	ClearSortURL   string
	ToggleHideURL  string
	FunctionLegend []string
}

// buildPanels turns the visible types of st into panels.
func buildPanels(st viewstate.State, lo linkOpts) ([]panelVM, error) {
	visible := st.VisibleTypes()
	panels := make([]panelVM, 0, len(visible))
	for _, t := range visible {
		stack, err := models.FunctionsOf(t)
		if err != nil {
			return nil, err
		}
		fns := make([]functionVM, len(stack))
		for i, f := range stack {
			fns[i] = functionVM{
				Code:     f.String(),
				Tier:     i + 1,
				SortRank: st.SortRank(f),
				Attitude: f.Attitude(),
				SortURL:  sortURL(f.String(), st, lo),
			}
		}
		panels = append(panels, panelVM{Type: t.String(), Functions: fns})
	}
	return panels, nil
}

// buildDeckData assembles the full page model for st.
func buildDeckData(base viewdata.BaseVM, st viewstate.State, lo linkOpts) (deckData, error) {
	panels, err := buildPanels(st, lo)
	if err != nil {
		return deckData{}, err
	}

	priority := st.SortPriority()
	sortNames := make([]string, len(priority))
	for i, f := range priority {
		sortNames[i] = f.String()
	}

	legend := make([]string, 0, models.FunctionsPerType)
	for _, f := range models.AllFunctions() {
		legend = append(legend, f.String())
	}

	return deckData{
		BaseVM:         base,
		Filter:         st.Filter(),
		Clauses:        typefilter.Clauses(st.Filter()),
		SortPriority:   sortNames,
		SortParam:      models.JoinFunctions(priority),
		Hidden:         lo.hidden,
		Panels:         panels,
		Visible:        len(panels),
		Total:          len(models.AllTypes()),
		ClearSortURL:   deckURL("/", st.WithSortPriority(nil), lo),
		ToggleHideURL:  deckURL("/", st, linkOpts{hidden: !lo.hidden, pinEmptyFilter: lo.pinEmptyFilter}),
		FunctionLegend: legend,
	}, nil
}
