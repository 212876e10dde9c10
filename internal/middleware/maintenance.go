package middleware

import (
	"encoding/json"
	"net/http"
)

// Maintenance serves 503 on public content routes while the site config
// has maintenance mode switched on. Lead capture, health, and the admin
// panel stay reachable so the mode can be switched back off.
func Maintenance(enabled func() bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if enabled() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": "site is under maintenance",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
