// internal/app/system/httperr/middleware.go
package httperr

import (
	"net/http"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
)

// statusWriter captures the status code and bytes written so the request
// logger can report them.
type statusWriter struct {
	http.ResponseWriter
	status  int
	written int64
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// RequestLogger logs one line per request: method, path, status, duration,
// and response size.
func RequestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", sw.status),
				zap.Duration("duration", time.Since(start)),
				zap.Int64("bytes", sw.written),
			)
		})
	}
}

// panicBody is the 500 response for a recovered panic. Stack is populated
// only outside production.
type panicBody struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// Recoverer converts panics into logged 500 responses. When includeStack is
// true (non-production environments) the stack trace is included in the
// response body to ease debugging.
func Recoverer(log *zap.Logger, includeStack bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil || rec == http.ErrAbortHandler {
					return
				}
				stack := string(debug.Stack())
				log.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
					zap.String("stack", stack),
				)

				body := panicBody{Message: "An unexpected error occurred."}
				if includeStack {
					body.Stack = stack
				}
				JSON(w, http.StatusInternalServerError, body)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
