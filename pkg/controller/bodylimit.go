package controller

import "net/http"

// WithBodyLimit caps request bodies at maxBytes. Reads past the limit fail
// with *http.MaxBytesError. A non-positive limit disables the cap.
func WithBodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if maxBytes <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
