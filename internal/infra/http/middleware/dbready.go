package middleware

import (
	"database/sql"
	"encoding/json"
	"net/http"
)

// RequireStore rejects requests with 503 while the data store is
// unreachable. Readiness is asked of the store itself on every request
// instead of being cached in a process-wide flag.
func RequireStore(db *sql.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if db == nil || db.PingContext(r.Context()) != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{"message": "Database not connected"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
