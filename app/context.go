package app

import (
	"context"
	"net/http"

	"github.com/springmovies/webclient/handler"
)

type stateContextKey struct{}

// WithState stores st in ctx.
func WithState(ctx context.Context, st *State) context.Context {
	return context.WithValue(ctx, stateContextKey{}, st)
}

// FromContext returns the request's State. It is nil outside Middleware.
func FromContext(ctx context.Context) *State {
	st, _ := ctx.Value(stateContextKey{}).(*State)
	return st
}

// Context is the handler context of the application's pages.
type Context interface {
	handler.Context
	State() *State
}

type appContext struct {
	handler.Context
	state *State
}

func (c appContext) State() *State { return c.state }

// NewContext is the handler.WithContextFactory for Context.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return appContext{
		Context: handler.NewContext(w, r),
		state:   FromContext(r.Context()),
	}
}
