package ratelimiter

import "time"

// Result is the outcome of one Allow call.
type Result struct {
	Limit     int       // bucket capacity
	Remaining int       // negative when the request was refused
	ResetAt   time.Time // next refill
}

func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is how long a refused client should wait, measured from now.
func (r *Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(r.ResetAt.Sub(now), 0)
}

// Config is a token bucket: Capacity tokens at most, RefillRate tokens added
// every RefillInterval.
type Config struct {
	Capacity       int           `env:"SUBMIT_RATE_CAPACITY" envDefault:"10"`
	RefillRate     int           `env:"SUBMIT_RATE_REFILL" envDefault:"1"`
	RefillInterval time.Duration `env:"SUBMIT_RATE_INTERVAL" envDefault:"6s"`
}

func DefaultConfig() Config {
	return Config{Capacity: 10, RefillRate: 1, RefillInterval: 6 * time.Second}
}
