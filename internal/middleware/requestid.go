// Package middleware provides the HTTP middleware chain.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey is a type-safe key for context values.
type contextKey string

// requestIDContextKey stores the request id in the request context.
var requestIDContextKey = contextKey("request_id")

// requestIDHeader is echoed back so the SPA can correlate failures with logs.
const requestIDHeader = "X-Request-ID"

// NewRequestIDMiddleware assigns each request a UUID, stores it in the
// request context and echoes it in the response headers. An incoming
// X-Request-ID from a trusted proxy is reused.
func NewRequestIDMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, id)
			ctx := context.WithValue(r.Context(), requestIDContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFromContext returns the request id, or "" when none was assigned.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

// ContextWithRequestID injects a request id; used by tests.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, id)
}
