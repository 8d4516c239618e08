// internal/app/features/deck/handler.go
package deck

import (
	uierrors "github.com/dalemusser/mbticards/internal/app/features/errors"
	"github.com/dalemusser/mbticards/internal/app/system/flash"
	"github.com/dalemusser/mbticards/internal/app/system/metrics"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the deck feature: the
// HTML deck, the filter/sort transitions and the JSON endpoint.
type Handler struct {
	DefaultFilter string
	Flash         *flash.Manager
	Metrics       *metrics.Recorder
	ErrLog        *uierrors.ErrorLogger
	Log           *zap.Logger
}

// NewHandler constructs a deck Handler. defaultFilter applies when a
// request carries no filter parameter at all.
func NewHandler(defaultFilter string, fm *flash.Manager, rec *metrics.Recorder, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DefaultFilter: defaultFilter,
		Flash:         fm,
		Metrics:       rec,
		ErrLog:        errLog,
		Log:           logger,
	}
}
