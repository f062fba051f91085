package middleware

import (
	"net/http"

	"tourism-api/configs"
)

// RecoveryMiddleware converts handler panics into a 500 response.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				configs.LogWithContext("http", "recovery").WithFields(map[string]interface{}{
					"panic": rec,
					"path":  r.URL.Path,
				}).Error("Recovered from panic in handler")
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
