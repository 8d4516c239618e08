// internal/app/features/about/handler.go
package about

import (
	"net/http"

	"github.com/dalemusser/mbticards/internal/app/system/viewdata"
	"github.com/dalemusser/mbticards/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// pairVM describes one opposing letter pair for the filter help.
type pairVM struct {
	Letters string
	Meaning string
}

type pageData struct {
	viewdata.BaseVM
	Pairs     []pairVM
	Functions []string
}

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeAbout explains the filter syntax, sorting and study mode.
func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	fns := models.AllFunctions()
	names := make([]string, len(fns))
	for i, f := range fns {
		names[i] = f.String()
	}

	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "How to use the deck", "/"),
		Pairs: []pairVM{
			{Letters: "I / E", Meaning: "Introversion / Extraversion"},
			{Letters: "S / N", Meaning: "Sensing / Intuition"},
			{Letters: "F / T", Meaning: "Feeling / Thinking"},
			{Letters: "P / J", Meaning: "Perceiving / Judging"},
		},
		Functions: names,
	}

	templates.Render(w, r, "about", data)
}
