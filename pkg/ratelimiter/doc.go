// Package ratelimiter throttles form submissions with a token bucket per
// client.
//
//	store := ratelimiter.NewMemoryStore()
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.DefaultConfig())
//	limit := ratelimiter.Middleware(bucket, ratelimiter.ByClientIP(http.MethodPost), log)
//
// Each bucket holds Capacity tokens and regains RefillRate tokens every
// RefillInterval. A refused request does not consume tokens.
package ratelimiter
