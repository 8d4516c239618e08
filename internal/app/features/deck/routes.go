// internal/app/features/deck/routes.go
package deck

import "github.com/go-chi/chi/v5"

// Routes returns the deck router; it is mounted at "/".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeDeck)
	r.Post("/filter", h.HandleFilter)
	r.Get("/sort/{function}", h.HandleSort)
	r.Get("/api/deck", h.ServeDeckJSON)
	return r
}
