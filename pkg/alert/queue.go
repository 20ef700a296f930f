package alert

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/springmovies/webclient/pkg/broadcast"
	"github.com/springmovies/webclient/pkg/logger"
	"github.com/springmovies/webclient/pkg/statemachine"
)

type entry struct {
	rec     Record
	state   *statemachine.Machine
	timer   Timer
	gen     uint64 // bumped whenever timer is replaced or cleared
	removal bool   // removal timer pending
}

// Queue holds the alerts of one browser session in display order.
// All methods are safe for concurrent use; mutations are serialized.
type Queue struct {
	cfg    queueConfig
	events *broadcast.MemoryBroadcaster[Event]

	mu      sync.Mutex
	order   []string
	entries map[string]*entry
	closed  bool
	touched time.Time
}

// NewQueue creates an empty queue.
func NewQueue(opts ...Option) *Queue {
	cfg := queueConfig{
		clock:        SystemClock{},
		hideDelay:    DefaultHideDelay,
		removeDelay:  DefaultRemoveDelay,
		streamBuffer: 32,
		log:          slog.Default(),
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Queue{
		cfg:     cfg,
		events:  broadcast.NewMemoryBroadcaster[Event](cfg.streamBuffer),
		entries: make(map[string]*entry),
		touched: cfg.clock.Now(),
	}
}

// Enqueue appends a visible record and starts its visibility timer.
// It always returns a fresh ID. On a closed queue nothing is stored.
func (q *Queue) Enqueue(heading, message string, variant Variant) string {
	id := q.cfg.newID()

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.cfg.log.Debug("enqueue on closed alert queue", logger.AlertID(id))
		return id
	}

	e := &entry{
		rec: Record{
			ID:      id,
			Heading: heading,
			Message: message,
			Variant: variant,
			Visible: true,
		},
		state: lifecycle.New(),
	}
	q.entries[id] = e
	q.order = append(q.order, id)
	q.schedule(id, e, q.cfg.hideDelay, q.onHideTimer)
	q.publish(EventEnqueued, e.rec)
	return id
}

// Dismiss is the close action. A visible record is hidden now and removed
// after the post-hide delay. Records already awaiting removal and unknown
// IDs are left alone.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if e, ok := q.live(id); ok {
		q.dismiss(id, e)
	}
}

// Remove deletes the record now and cancels its timer. Unknown IDs are ignored.
func (q *Queue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if e, ok := q.live(id); ok {
		q.remove(id, e)
	}
}

// Records returns a snapshot in display order.
func (q *Queue) Records() []Record {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshot()
}

// Get returns the record with id.
func (q *Queue) Get(id string) (Record, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if e, ok := q.entries[id]; ok {
		return e.rec, true
	}
	return Record{}, false
}

// Len returns the number of records.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.order)
}

// Subscribe returns the current records together with a subscription to
// every later change, with nothing lost between the two. The subscription
// ends when ctx is done or the queue is closed.
func (q *Queue) Subscribe(ctx context.Context) ([]Record, broadcast.Subscriber[Event]) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshot(), q.events.Subscribe(ctx)
}

// Subscribers returns the number of open subscriptions.
func (q *Queue) Subscribers() int { return q.events.Len() }

// IdleSince returns the time of the last change.
func (q *Queue) IdleSince() time.Time {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.touched
}

// Close stops every timer and ends all subscriptions. Timer callbacks that
// are already running and later calls leave the queue untouched.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	for _, e := range q.entries {
		q.stopTimer(e)
	}
	clear(q.entries)
	q.order = nil
	q.mu.Unlock()

	_ = q.events.Close()
}

func (q *Queue) live(id string) (*entry, bool) {
	if q.closed {
		return nil, false
	}
	e, ok := q.entries[id]
	return e, ok
}

func (q *Queue) dismiss(id string, e *entry) {
	if e.removal {
		return
	}
	if e.state.Is(stateVisible) {
		q.stopTimer(e)
		q.hide(e)
	}
	e.removal = true
	q.schedule(id, e, q.cfg.removeDelay, q.onRemoveTimer)
}

func (q *Queue) hide(e *entry) {
	if err := e.state.Fire(context.Background(), eventHide, nil); err != nil {
		q.cfg.log.Error("alert hide", logger.AlertID(e.rec.ID), logger.Error(err))
		return
	}
	e.rec.Visible = false
	q.publish(EventHidden, e.rec)
}

func (q *Queue) remove(id string, e *entry) {
	q.stopTimer(e)
	if err := e.state.Fire(context.Background(), eventRemove, nil); err != nil {
		q.cfg.log.Error("alert remove", logger.AlertID(id), logger.Error(err))
	}
	delete(q.entries, id)
	q.order = slices.DeleteFunc(q.order, func(s string) bool { return s == id })
	q.publish(EventRemoved, e.rec)
}

// schedule replaces e's timer. The callback receives the generation it was
// scheduled with so a stale firing can be recognised and ignored.
func (q *Queue) schedule(id string, e *entry, d time.Duration, fn func(id string, gen uint64)) {
	q.stopTimer(e)
	gen := e.gen
	e.timer = q.cfg.clock.AfterFunc(d, func() { fn(id, gen) })
}

func (q *Queue) stopTimer(e *entry) {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gen++
}

// current returns the entry only if the callback's timer is still the active one.
func (q *Queue) current(id string, gen uint64) (*entry, bool) {
	e, ok := q.live(id)
	if !ok || e.gen != gen {
		return nil, false
	}
	e.timer = nil
	e.gen++
	return e, true
}

func (q *Queue) onHideTimer(id string, gen uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.current(id, gen)
	if !ok {
		return
	}
	q.hide(e)
	q.dismiss(id, e)
}

func (q *Queue) onRemoveTimer(id string, gen uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if e, ok := q.current(id, gen); ok {
		q.remove(id, e)
	}
}

func (q *Queue) snapshot() []Record {
	out := make([]Record, 0, len(q.order))
	for _, id := range q.order {
		out = append(out, q.entries[id].rec)
	}
	return out
}

// publish runs under q.mu so subscribers observe changes in order.
func (q *Queue) publish(t EventType, rec Record) {
	q.touched = q.cfg.clock.Now()
	_ = q.events.Broadcast(context.Background(), broadcast.Message[Event]{Data: Event{Type: t, Record: rec}})
	q.cfg.log.Debug("alert "+string(t),
		logger.Component("alert"),
		logger.AlertID(rec.ID),
		logger.Variant(rec.Variant),
	)
}
