package ratelimiter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/springmovies/webclient/pkg/clientip"
	"github.com/springmovies/webclient/pkg/logger"
)

// KeyFunc picks the bucket of a request. An empty key lets the request
// through without consuming a token.
type KeyFunc func(r *http.Request) string

// ByClientIP limits each client address separately, on the given methods
// only; other methods are not limited. clientip.Middleware must run first.
func ByClientIP(methods ...string) KeyFunc {
	return func(r *http.Request) string {
		for _, m := range methods {
			if r.Method == m {
				if ip := clientip.GetIPFromContext(r.Context()); ip != "" {
					return ip + ":" + r.URL.Path
				}
				return ""
			}
		}
		return ""
	}
}

// Middleware answers 429 Too Many Requests once the bucket of a key is
// empty. Store failures let the request through.
func Middleware(tb *Bucket, keyFunc KeyFunc, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			result, err := tb.Allow(r.Context(), key)
			if err != nil {
				log.ErrorContext(r.Context(), "rate limit store failed", logger.Component("ratelimiter"), logger.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				if retry := int(result.RetryAfter(time.Now()).Seconds()); retry > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(retry))
				}
				log.WarnContext(r.Context(), "rate limited", logger.Component("ratelimiter"), slog.String("key", key))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
