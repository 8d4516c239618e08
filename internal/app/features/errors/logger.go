// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrorLogger logs a failure with request context and renders the matching
// error page. Each call gets a short reference id that appears both in the
// log line and on the page, so a user report can be traced.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger around logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogBadRequest logs at warn level and renders a 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	ref := newReference()
	e.Log.Warn(logMsg, requestFields(r, ref, err)...)
	RenderBadRequest(w, r, userMsg, ref, backURL)
}

// LogServerError logs at error level and renders a 500 page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	ref := newReference()
	e.Log.Error(logMsg, requestFields(r, ref, err)...)
	RenderServerError(w, r, userMsg, ref, backURL)
}

func newReference() string {
	return uuid.New().String()[:8]
}

func requestFields(r *http.Request, ref string, err error) []zap.Field {
	return []zap.Field{
		zap.String("ref", ref),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("query", r.URL.RawQuery),
		zap.Error(err),
	}
}
