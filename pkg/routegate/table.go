package routegate

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Route is one entry of the static route table.
type Route struct {
	Pattern string
	// Methods defaults to every method when empty.
	Methods     []string
	RequireAuth bool
	Handler     http.Handler
}

// Table is the application's route table. Whether a route needs a signed-in
// user is part of its entry, not of the handler.
type Table []Route

// Mount registers every route on r. Protected routes are wrapped in Gate.
func (t Table) Mount(r chi.Router, opts ...Option) {
	cfg := newGateConfig(opts)
	for _, route := range t {
		h := route.Handler
		if route.RequireAuth {
			h = gate(h, cfg)
		}
		if len(route.Methods) == 0 {
			r.Handle(route.Pattern, h)
			continue
		}
		for _, method := range route.Methods {
			r.Method(method, route.Pattern, h)
		}
	}
}

// Protected reports whether a route matching method and pattern requires a
// signed-in user.
func (t Table) Protected(method, pattern string) bool {
	for _, route := range t {
		if route.Pattern != pattern {
			continue
		}
		if len(route.Methods) == 0 {
			return route.RequireAuth
		}
		for _, m := range route.Methods {
			if m == method {
				return route.RequireAuth
			}
		}
	}
	return false
}

// Use returns a copy of t whose handlers are wrapped in middlewares, the
// first one outermost. Nil middlewares are skipped.
func (t Table) Use(middlewares ...func(http.Handler) http.Handler) Table {
	out := make(Table, len(t))
	for i, route := range t {
		h := route.Handler
		for j := len(middlewares) - 1; j >= 0; j-- {
			if middlewares[j] != nil {
				h = middlewares[j](h)
			}
		}
		route.Handler = h
		out[i] = route
	}
	return out
}
