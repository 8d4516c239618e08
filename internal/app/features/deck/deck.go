// internal/app/features/deck/deck.go
package deck

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/dalemusser/mbticards/internal/app/system/limits"
	"github.com/dalemusser/mbticards/internal/app/system/typefilter"
	"github.com/dalemusser/mbticards/internal/app/system/viewdata"
	"github.com/dalemusser/mbticards/internal/app/system/viewstate"
	"github.com/dalemusser/mbticards/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – the deck                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeDeck renders the deck for the state in the query string. HTMX
// requests targeting the grid get only the grid snippet.
func (h *Handler) ServeDeck(w http.ResponseWriter, r *http.Request) {
	st, err := h.stateFromRequest(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "deck: invalid sort parameter", err, "The sort parameter names an unknown cognitive function.", "/")
		return
	}
	hidden := hiddenFromValues(r.URL.Query())

	base := viewdata.NewBaseVM(r, "Flashcards", "/")
	base.Notices = h.Flash.Pop(w, r)

	data, err := buildDeckData(base, st, h.links(hidden))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "deck: build view failed", err, "Unable to build the deck.", "/")
		return
	}

	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "deck-grid" {
		data.SyncInput = true
		h.Metrics.DeckRendered("snippet", data.Visible)
		templates.RenderSnippet(w, "deck_grid", data)
		return
	}

	h.Metrics.DeckRendered("html", data.Visible)
	templates.Render(w, r, "deck", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /filter – replace the filter                                           |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleFilter normalizes the submitted filter and redirects to the deck.
// The current sort priority travels in a hidden form field.
func (h *Handler) HandleFilter(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFilterFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "deck: parse filter form failed", err, "Invalid form data.", "/")
		return
	}
	raw := r.PostForm.Get(viewstate.ParamFilter)

	st, err := viewstate.FromQuery(url.Values{
		viewstate.ParamSort: {r.PostForm.Get(viewstate.ParamSort)},
	})
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "deck: invalid sort field", err, "The sort field names an unknown cognitive function.", "/")
		return
	}
	st = st.WithFilter(raw)

	adjusted := typefilter.Adjusted(raw)
	h.Metrics.FilterChanged(adjusted)
	if adjusted {
		h.Flash.Add(w, r, fmt.Sprintf("Filter adjusted to %q: opposing or unknown letters were dropped.", st.Filter()))
	}
	h.Log.Debug("deck: filter changed",
		zap.String("raw", raw),
		zap.String("filter", st.Filter()))

	http.Redirect(w, r, deckURL("/", st, h.links(hiddenFromValues(r.PostForm))), http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /sort/{function} – prioritise one function                              |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleSort replaces the sort priority with the single clicked function,
// keeps the filter, and redirects to the deck.
func (h *Handler) HandleSort(w http.ResponseWriter, r *http.Request) {
	fn, err := models.ParseFunction(chi.URLParam(r, "function"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "deck: unknown sort function", err, "That is not one of the eight cognitive functions.", "/")
		return
	}

	q := h.withDefaultFilter(r.URL.Query())
	st := viewstate.New(q.Get(viewstate.ParamFilter)).
		WithSortPriority([]models.FunctionCode{fn})

	h.Metrics.SortSelected(fn.String())
	http.Redirect(w, r, deckURL("/", st, h.links(hiddenFromValues(q))), http.StatusSeeOther)
}
