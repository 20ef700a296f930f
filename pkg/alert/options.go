package alert

import (
	"log/slog"
	"time"
)

type queueConfig struct {
	clock        Clock
	hideDelay    time.Duration
	removeDelay  time.Duration
	streamBuffer int
	log          *slog.Logger
	newID        func() string
}

// Option configures a Queue.
type Option func(*queueConfig)

func WithClock(c Clock) Option {
	return func(q *queueConfig) {
		if c != nil {
			q.clock = c
		}
	}
}

// WithHideDelay sets how long a record stays visible.
func WithHideDelay(d time.Duration) Option {
	return func(q *queueConfig) {
		if d > 0 {
			q.hideDelay = d
		}
	}
}

// WithRemoveDelay sets the pause between hiding and removal.
func WithRemoveDelay(d time.Duration) Option {
	return func(q *queueConfig) {
		if d > 0 {
			q.removeDelay = d
		}
	}
}

// WithStreamBuffer sets the per-subscriber event buffer.
func WithStreamBuffer(n int) Option {
	return func(q *queueConfig) {
		if n > 0 {
			q.streamBuffer = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(q *queueConfig) {
		if l != nil {
			q.log = l
		}
	}
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(q *queueConfig) {
		if fn != nil {
			q.newID = fn
		}
	}
}

// FromConfig turns cfg into options.
func FromConfig(cfg Config) []Option {
	return []Option{
		WithHideDelay(cfg.HideDelay),
		WithRemoveDelay(cfg.RemoveDelay),
		WithStreamBuffer(cfg.StreamBuffer),
	}
}
