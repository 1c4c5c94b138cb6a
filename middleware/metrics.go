package middleware

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/natyavidhan/uidai-hackathon/metrics"
)

// MetricsMiddleware counts requests per route template and status code.
// Using the mux route template instead of the raw path keeps the label
// cardinality bounded for paths like /district/{name}.
func MetricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrw := &responseWriter{
				ResponseWriter: w,
				status:         http.StatusOK,
			}

			next.ServeHTTP(wrw, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}
			m.IncrementRequests(route, strconv.Itoa(wrw.status))
		})
	}
}
