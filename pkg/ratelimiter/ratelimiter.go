package ratelimiter

import (
	"context"
	"fmt"
)

// Bucket throttles form submissions per key. A refused request leaves the
// bucket untouched, so a client that keeps retrying is admitted again as
// soon as one token has refilled.
type Bucket struct {
	store  Store
	config Config
}

func NewBucket(store Store, config Config) (*Bucket, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Bucket{store: store, config: config}, nil
}

// Allow takes one token for key.
func (tb *Bucket) Allow(ctx context.Context, key string) (*Result, error) {
	return tb.AllowN(ctx, key, 1)
}

// AllowN takes n tokens at once. n must be between 1 and the capacity; a
// larger n could never be admitted.
func (tb *Bucket) AllowN(ctx context.Context, key string, n int) (*Result, error) {
	if n <= 0 || n > tb.config.Capacity {
		return nil, fmt.Errorf("%w: need 1..%d, got %d", ErrInvalidTokenCount, tb.config.Capacity, n)
	}
	remaining, resetAt, err := tb.store.ConsumeTokens(ctx, key, n, tb.config)
	if err != nil {
		return nil, fmt.Errorf("ratelimiter: consume %q: %w", key, err)
	}
	return &Result{Limit: tb.config.Capacity, Remaining: remaining, ResetAt: resetAt}, nil
}

// Reset refills the bucket of key.
func (tb *Bucket) Reset(ctx context.Context, key string) error {
	return tb.store.Reset(ctx, key)
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: SUBMIT_RATE_CAPACITY must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: SUBMIT_RATE_REFILL must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: SUBMIT_RATE_INTERVAL must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}
