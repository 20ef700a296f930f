// Package apptest wires a complete request pipeline for handler tests:
// in-memory sessions, an alert registry on a manual clock and the bundled
// message catalog.
package apptest

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/springmovies/webclient/app"
	"github.com/springmovies/webclient/pkg/alert"
	"github.com/springmovies/webclient/pkg/alert/alerttest"
	"github.com/springmovies/webclient/pkg/cookie"
	"github.com/springmovies/webclient/pkg/messages"
	"github.com/springmovies/webclient/pkg/session"
)

const secret = "apptest-secret-key-that-is-long-enough-for-hkdf"

// Env is a test application.
type Env struct {
	Sessions *session.Manager
	Alerts   *alert.Registry
	Clock    *alerttest.Clock
	Catalog  *messages.Catalog
	Logger   *slog.Logger
}

// New creates an Env torn down with t.
func New(t *testing.T) *Env {
	t.Helper()

	cookies, err := cookie.New([]string{secret})
	require.NoError(t, err)

	cfg := session.DefaultConfig()
	cfg.CleanupInterval = 0

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := alerttest.NewClock()
	env := &Env{
		Sessions: session.NewFromConfig(cfg, session.WithCookieManager(cookies), session.WithLogger(log)),
		Alerts:   alert.NewRegistry(0, alert.WithClock(clock), alert.WithLogger(log)),
		Clock:    clock,
		Catalog:  messages.Default(),
		Logger:   log,
	}
	t.Cleanup(env.Alerts.Close)
	return env
}

// Middleware returns the pipeline that runs in front of every page.
func (e *Env) Middleware(next http.Handler) http.Handler {
	return e.Sessions.Middleware(
		messages.Middleware(e.Catalog)(
			app.Middleware(app.Dependencies{
				Sessions: e.Sessions,
				Alerts:   e.Alerts,
				Catalog:  e.Catalog,
				Logger:   e.Logger,
			})(next),
		),
	)
}

// Browser keeps cookies between requests against one handler.
type Browser struct {
	handler http.Handler
	cookies map[string]*http.Cookie
}

func (e *Env) Browser(h http.Handler) *Browser {
	return &Browser{handler: h, cookies: make(map[string]*http.Cookie)}
}

// Do serves r with the browser's cookies and stores the ones set in reply.
func (b *Browser) Do(r *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	b.handler.ServeHTTP(w, r)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return w
}

// State runs a request through the pipeline and returns its State.
func (b *Browser) State(t *testing.T, mw func(http.Handler) http.Handler) *app.State {
	t.Helper()
	var st *app.State
	h := mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		st = app.FromContext(r.Context())
	}))
	saved := b.handler
	b.handler = h
	b.Do(httptest.NewRequest(http.MethodGet, "/", nil))
	b.handler = saved
	require.NotNil(t, st)
	return st
}
