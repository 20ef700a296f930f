package clientip

import (
	"net/http"
	"net/netip"
)

// Middleware stores the client IP of each request in its context.
// Forwarding headers count only when the peer is in trusted.
func Middleware(trusted ...netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(SetIPToContext(r.Context(), GetIP(r, trusted...))))
		})
	}
}
