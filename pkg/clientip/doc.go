// Package clientip resolves the address of the browser behind proxies and
// carries it in the request context for logging and rate limiting.
//
// CF-Connecting-IP, X-Forwarded-For and X-Real-IP are honored only when the
// connecting peer is listed in Config.TrustedProxies (HTTP_TRUSTED_PROXIES).
// Any other peer is identified by its own address, so a browser cannot pick
// its rate-limit key by sending those headers.
package clientip
