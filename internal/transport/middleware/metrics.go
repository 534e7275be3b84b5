package middleware

import (
	"net/http"
	"time"
)

type httpMetrics interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// RouteFunc resolves the route pattern that will serve r, or "" when none
// matches. Used as a low-cardinality metrics label instead of the raw path.
type RouteFunc func(r *http.Request) string

// Metrics records request count and latency per method, route and status.
func Metrics(m httpMetrics, route RouteFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			m.ObserveHTTP(r.Method, route(r), sw.status, time.Since(start))
		})
	}
}

// MuxRoute returns a RouteFunc backed by mux's own pattern matching.
func MuxRoute(mux *http.ServeMux) RouteFunc {
	return func(r *http.Request) string {
		_, pattern := mux.Handler(r)
		return pattern
	}
}
