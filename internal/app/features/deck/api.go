// internal/app/features/deck/api.go
package deck

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/mbticards/internal/app/system/ranking"
	"github.com/dalemusser/mbticards/internal/domain/models"
	"go.uber.org/zap"
)

// deckResponse is the JSON structure for GET /api/deck.
type deckResponse struct {
	Filter string      `json:"filter"`
	Sort   []string    `json:"sort"`
	Types  []typeEntry `json:"types"`
}

type typeEntry struct {
	Type      string   `json:"type"`
	Rank      int      `json:"rank"`
	Functions []string `json:"functions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ServeDeckJSON handles GET /api/deck.
//
// On success: 200 and
//
//	{ "filter":"IN", "sort":["Ni"], "types":[{"type":"INFJ","rank":8,"functions":["Ni",…]}, …] }
//
// On an unknown sort function: 400 and
//
//	{ "error":"…" }
func (h *Handler) ServeDeckJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	st, err := h.stateFromRequest(r)
	if err != nil {
		h.Log.Warn("deck api: invalid sort parameter",
			zap.String("query", r.URL.RawQuery),
			zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
		return
	}

	priority := st.SortPriority()
	resp := deckResponse{
		Filter: st.Filter(),
		Sort:   make([]string, len(priority)),
		Types:  []typeEntry{},
	}
	for i, f := range priority {
		resp.Sort[i] = f.String()
	}

	for _, t := range st.VisibleTypes() {
		rank, err := ranking.RankOf(priority, t)
		if err != nil {
			h.Log.Error("deck api: rank failed", zap.String("type", t.String()), zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(errorResponse{Error: "internal error"})
			return
		}
		stack, _ := models.FunctionsOf(t)
		fns := make([]string, len(stack))
		for i, f := range stack {
			fns[i] = f.String()
		}
		resp.Types = append(resp.Types, typeEntry{Type: t.String(), Rank: rank, Functions: fns})
	}

	h.Metrics.DeckRendered("json", len(resp.Types))
	_ = json.NewEncoder(w).Encode(resp)
}
