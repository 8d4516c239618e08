// internal/app/features/errors/render.go
package errors

import "net/http"

// RenderBadRequest shows a 400 page with msg.
// If backURL is empty, the back link resolves to the deck.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, ref, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	renderError(w, r, http.StatusBadRequest, "Bad request", msg, ref, backURL)
}

// RenderServerError shows a 500 page with msg.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, ref, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	renderError(w, r, http.StatusInternalServerError, "Something went wrong", msg, ref, backURL)
}
