package routegate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/springmovies/webclient/pkg/routegate"
	"github.com/springmovies/webclient/pkg/session"
)

func TestAllow(t *testing.T) {
	t.Parallel()

	assert.False(t, routegate.Allow(nil))
	assert.True(t, routegate.Allow(&session.User{}))
	assert.True(t, routegate.Allow(&session.User{ID: "1", Email: "a@b.co", Token: "t"}))
}

func withUser(r *http.Request, user *session.User) *http.Request {
	s := session.NewSession("tok", 0)
	s.User = user
	return r.WithContext(session.WithSession(r.Context(), s))
}

func okHandler(hits *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*hits++
		w.WriteHeader(http.StatusOK)
	})
}

func TestGate(t *testing.T) {
	t.Parallel()

	t.Run("anonymous is redirected home", func(t *testing.T) {
		t.Parallel()
		var hits int
		w := httptest.NewRecorder()
		routegate.Gate(okHandler(&hits)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/change-password", nil))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.Zero(t, hits)
	})

	t.Run("anonymous session without user", func(t *testing.T) {
		t.Parallel()
		var hits int
		w := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodGet, "/sign-out", nil), nil)
		routegate.Gate(okHandler(&hits), routegate.WithRedirect("/sign-in")).ServeHTTP(w, r)

		assert.Equal(t, "/sign-in", w.Header().Get("Location"))
		assert.Zero(t, hits)
	})

	t.Run("signed in passes", func(t *testing.T) {
		t.Parallel()
		var hits int
		w := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodGet, "/sign-out", nil), &session.User{Email: "a@b.co"})
		routegate.Gate(okHandler(&hits)).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, hits)
	})

	t.Run("datastar gets an sse redirect", func(t *testing.T) {
		t.Parallel()
		var hits int
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/change-password", nil)
		r.Header.Set("Datastar-Request", "true")
		routegate.Gate(okHandler(&hits)).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "window.location")
		assert.Zero(t, hits)
	})

	t.Run("session is untouched", func(t *testing.T) {
		t.Parallel()
		s := session.NewSession("tok", 0)
		before := *s
		r := httptest.NewRequest(http.MethodGet, "/sign-out", nil)
		r = r.WithContext(session.WithSession(context.Background(), s))

		var hits int
		routegate.Gate(okHandler(&hits)).ServeHTTP(httptest.NewRecorder(), r)
		assert.Equal(t, before, *s)
	})
}

func TestTable_Mount(t *testing.T) {
	t.Parallel()

	var public, private int
	table := routegate.Table{
		{Pattern: "/", Methods: []string{http.MethodGet}, Handler: okHandler(&public)},
		{Pattern: "/sign-out", Methods: []string{http.MethodGet}, RequireAuth: true, Handler: okHandler(&private)},
		{Pattern: "/any", Handler: okHandler(&public)},
	}

	r := chi.NewRouter()
	table.Mount(r)

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, serve(httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(httptest.NewRequest(http.MethodPost, "/", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(httptest.NewRequest(http.MethodDelete, "/any", nil)).Code)

	w := serve(httptest.NewRequest(http.MethodGet, "/sign-out", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Zero(t, private)

	w = serve(withUser(httptest.NewRequest(http.MethodGet, "/sign-out", nil), &session.User{Email: "a@b.co"}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, private)
	assert.Equal(t, 2, public)

	assert.True(t, table.Protected(http.MethodGet, "/sign-out"))
	assert.False(t, table.Protected(http.MethodGet, "/"))
	assert.False(t, table.Protected(http.MethodGet, "/missing"))
}

func TestTable_Use(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	var hits int
	table := routegate.Table{{Pattern: "/x", Handler: okHandler(&hits)}}
	wrapped := table.Use(tag("outer"), nil, tag("inner"))

	wrapped[0].Handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.Equal(t, 1, hits)

	table[0].Handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Len(t, order, 2)
}
