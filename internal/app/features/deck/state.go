// internal/app/features/deck/state.go
package deck

import (
	"net/http"
	"net/url"

	"github.com/dalemusser/mbticards/internal/app/system/viewstate"
)

const paramHidden = "hidden"

// stateFromRequest rebuilds the view state from the query string. When the
// filter parameter is absent the configured default filter applies; an
// explicitly empty filter shows every type.
func (h *Handler) stateFromRequest(r *http.Request) (viewstate.State, error) {
	return viewstate.FromQuery(h.withDefaultFilter(r.URL.Query()))
}

// withDefaultFilter sets the default filter on q when q has no filter.
func (h *Handler) withDefaultFilter(q url.Values) url.Values {
	if !q.Has(viewstate.ParamFilter) && h.DefaultFilter != "" {
		q.Set(viewstate.ParamFilter, h.DefaultFilter)
	}
	return q
}

func hiddenFromValues(v url.Values) bool {
	return v.Get(paramHidden) == "1"
}

// linkOpts is what every deck link carries besides the view state.
type linkOpts struct {
	hidden bool
	// pinEmptyFilter writes an explicit empty filter so a configured
	// default filter does not return on the next request.
	pinEmptyFilter bool
}

func (h *Handler) links(hidden bool) linkOpts {
	return linkOpts{hidden: hidden, pinEmptyFilter: h.DefaultFilter != ""}
}

func (o linkOpts) apply(q url.Values, st viewstate.State) {
	if st.Filter() == "" && o.pinEmptyFilter {
		q.Set(viewstate.ParamFilter, "")
	}
	if o.hidden {
		q.Set(paramHidden, "1")
	}
}

// deckURL renders path with the state and the link options as query params.
func deckURL(path string, st viewstate.State, o linkOpts) string {
	q := st.Query()
	o.apply(q, st)
	if enc := q.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

// sortURL points at the sort transition for fn, carrying filter and hidden.
func sortURL(fn string, st viewstate.State, o linkOpts) string {
	q := url.Values{}
	if f := st.Filter(); f != "" {
		q.Set(viewstate.ParamFilter, f)
	}
	o.apply(q, st)
	u := "/sort/" + url.PathEscape(fn)
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}
