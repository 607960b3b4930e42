package middleware

import "net/http"

// DefaultMaxBodyBytes caps request bodies at 256 KiB. The largest payloads the
// API accepts are property registrations, which are well under that.
const DefaultMaxBodyBytes int64 = 256 << 10

// MaxBytes rejects request bodies larger than limit with 413. A non-positive
// limit falls back to DefaultMaxBodyBytes.
func MaxBytes(limit int64) func(http.Handler) http.Handler {
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.ContentLength != 0 {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
