// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/mbticards/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status    int
	Message   string
	Reference string // correlates the page with the server log line
}

// Handler is the errors feature handler.
// No backends needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders the friendly 404 page. It is installed as the router's
// NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	renderError(w, r, http.StatusNotFound, "Page not found", "That page doesn't exist.", "", "/")
}

// renderError writes status and renders the shared error template.
func renderError(w http.ResponseWriter, r *http.Request, status int, title, msg, ref, backDefault string) {
	data := pageData{
		BaseVM:    viewdata.NewBaseVM(r, title, backDefault),
		Status:    status,
		Message:   msg,
		Reference: ref,
	}
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}
