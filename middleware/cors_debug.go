package middleware

import (
	"log"
	"net/http"
)

// CORSDebugMiddleware logs preflight traffic. Kept behind the rs/cors
// handler for diagnosing origin misconfiguration in deployments.
func CORSDebugMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			log.Printf("[CORS Debug] Preflight from Origin: %s for %s", r.Header.Get("Origin"), r.URL.Path)
		}
		next.ServeHTTP(w, r)
	})
}
