package health

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/mbticards/internal/domain/models"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Catalog int    `json:"catalog"`
	Message string `json:"message,omitempty"`
}

// Serve handles GET /health.
//
// The app has no backends, so health means the compiled-in type catalog
// still satisfies its invariants (see models.CheckCatalog).
//
// On success: 200 and
//
//	{ "status":"ok", "catalog":16 }
//
// On a broken catalog: 503 and
//
//	{ "status":"error", "catalog":N, "message":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	serveCatalogCheck(w, h.Log, len(models.AllTypes()), models.CheckCatalog())
}

func serveCatalogCheck(w http.ResponseWriter, logger *zap.Logger, count int, checkErr error) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:  "ok",
		Catalog: count,
	}

	if checkErr != nil {
		logger.Error("health-check: catalog invalid", zap.Error(checkErr))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Message = "Type catalog invalid"
	}

	_ = json.NewEncoder(w).Encode(resp)
}
