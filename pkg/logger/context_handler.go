package logger

import (
	"context"
	"log/slog"
	"maps"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// ContextHandler adds request-scoped attributes (request ID, client IP) to
// every record. An attribute the caller already set at the same level, on
// the record or through Logger.With, is not added a second time.
type ContextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
	// bound holds keys set through WithAttrs since the innermost group.
	bound map[string]struct{}
}

// NewContextHandler wraps next. Nil extractors are dropped.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) *ContextHandler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &ContextHandler{next: next, extractors: clean}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if len(h.extractors) == 0 {
		return h.next.Handle(ctx, rec)
	}

	present := maps.Clone(h.bound)
	if present == nil {
		present = make(map[string]struct{}, rec.NumAttrs())
	}
	rec.Attrs(func(a slog.Attr) bool {
		present[a.Key] = struct{}{}
		return true
	})

	for _, ex := range h.extractors {
		attr, ok := ex(ctx)
		if !ok {
			continue
		}
		if _, dup := present[attr.Key]; dup {
			continue
		}
		rec.AddAttrs(attr)
	}
	return h.next.Handle(ctx, rec)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	c.next = h.next.WithAttrs(attrs)
	c.bound = maps.Clone(h.bound)
	if c.bound == nil {
		c.bound = make(map[string]struct{}, len(attrs))
	}
	for _, a := range attrs {
		c.bound[a.Key] = struct{}{}
	}
	return c
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.next = h.next.WithGroup(name)
	c.bound = nil
	return c
}

func (h *ContextHandler) clone() *ContextHandler {
	c := *h
	return &c
}
