package alert

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/springmovies/webclient/pkg/broadcast"
	"github.com/springmovies/webclient/pkg/logger"
)

// Registry owns one Queue per browser session.
type Registry struct {
	opts    []Option
	clock   Clock
	idleTTL time.Duration
	log     *slog.Logger

	mu     sync.Mutex
	queues map[string]*Queue
	closed bool
}

// NewRegistry creates a registry whose queues are built with opts. Queues
// that are empty, unobserved and unchanged for idleTTL are dropped by Prune.
func NewRegistry(idleTTL time.Duration, opts ...Option) *Registry {
	qc := queueConfig{clock: SystemClock{}, log: slog.Default()}
	for _, opt := range opts {
		opt(&qc)
	}
	return &Registry{
		opts:    opts,
		clock:   qc.clock,
		idleTTL: idleTTL,
		log:     qc.log,
		queues:  make(map[string]*Queue),
	}
}

// NewRegistryFromConfig wires cfg into a Registry.
func NewRegistryFromConfig(cfg Config, opts ...Option) *Registry {
	return NewRegistry(cfg.IdleTTL, append(FromConfig(cfg), opts...)...)
}

// Queue returns the queue for sessionID, creating it on first use.
// After Close it returns a closed queue that stores nothing.
func (r *Registry) Queue(sessionID string) *Queue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queue(sessionID)
}

func (r *Registry) queue(sessionID string) *Queue {
	if q, ok := r.queues[sessionID]; ok {
		return q
	}
	q := NewQueue(r.opts...)
	if r.closed {
		q.Close()
		return q
	}
	r.queues[sessionID] = q
	return q
}

// Lookup returns the queue for sessionID without creating one.
func (r *Registry) Lookup(sessionID string) (*Queue, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.queues[sessionID]
	return q, ok
}

// Enqueue adds an alert to the queue of sessionID. Prune cannot drop the
// queue between its lookup and the append.
func (r *Registry) Enqueue(sessionID, heading, message string, variant Variant) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queue(sessionID).Enqueue(heading, message, variant)
}

// Subscribe follows the queue of sessionID, like Queue.Subscribe. The
// subscription is registered before Prune can see the queue again.
func (r *Registry) Subscribe(ctx context.Context, sessionID string) ([]Record, broadcast.Subscriber[Event]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queue(sessionID).Subscribe(ctx)
}

// Release closes and forgets the queue for sessionID.
func (r *Registry) Release(sessionID string) {
	r.mu.Lock()
	q, ok := r.queues[sessionID]
	delete(r.queues, sessionID)
	r.mu.Unlock()
	if ok {
		q.Close()
	}
}

// Healthcheck reports ErrRegistryClosed once Close has been called.
func (r *Registry) Healthcheck(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRegistryClosed
	}
	return nil
}

// Len returns the number of live queues.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queues)
}

// Prune releases idle queues and returns how many were dropped.
func (r *Registry) Prune() int {
	cutoff := r.clock.Now().Add(-r.idleTTL)

	r.mu.Lock()
	var stale []*Queue
	for id, q := range r.queues {
		if q.Len() == 0 && q.Subscribers() == 0 && !q.IdleSince().After(cutoff) {
			stale = append(stale, q)
			delete(r.queues, id)
		}
	}
	r.mu.Unlock()

	for _, q := range stale {
		q.Close()
	}
	return len(stale)
}

// Run prunes every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Prune(); n > 0 {
				r.log.DebugContext(ctx, "pruned alert queues", logger.Component("alert"), slog.Int("count", n))
			}
		}
	}
}

// Close closes every queue, ending open alert streams.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	queues := r.queues
	r.queues = make(map[string]*Queue)
	r.mu.Unlock()

	for _, q := range queues {
		q.Close()
	}
}
