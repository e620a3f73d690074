package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// StatusRecorder receives one call per completed response.
type StatusRecorder interface {
	RecordHTTPStatus(method string, status int)
}

// NewStatusMetrics returns a middleware that reports every response status to rec.
// Non-standard request methods are collapsed into "OTHER".
func NewStatusMetrics(rec StatusRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			rec.RecordHTTPStatus(methodLabel(r.Method), ww.Status())
		})
	}
}

// methodLabel keeps the method label bounded: anything outside the standard
// HTTP methods is reported as "OTHER".
func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodConnect, http.MethodOptions, http.MethodTrace:
		return method
	default:
		return "OTHER"
	}
}
