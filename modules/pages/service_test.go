package pages_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/springmovies/webclient/app/apptest"
	"github.com/springmovies/webclient/modules/pages"
)

func setup(t *testing.T) *apptest.Browser {
	t.Helper()
	env := apptest.New(t)
	r := chi.NewRouter()
	r.Use(env.Middleware)
	pages.Routes().Mount(r)
	r.NotFound(pages.NotFound().ServeHTTP)
	return env.Browser(r)
}

func TestHome(t *testing.T) {
	t.Parallel()

	w := setup(t).Do(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Spring Movies 🎥")
	assert.Contains(t, w.Body.String(), "Sign In")
	assert.Contains(t, w.Body.String(), `id="alerts"`)
}

func TestRouteInspector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		id   string
	}{
		{"number", "/with-router-hooks-test/42", "42"},
		{"word", "/with-router-hooks-test/abc", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := setup(t).Do(httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			assert.Contains(t, body, "<dt>match.params.id</dt><dd>"+tt.id+"</dd>")
			assert.Contains(t, body, "<dt>params.id</dt><dd>"+tt.id+"</dd>")
			assert.Contains(t, body, "<dt>location.pathname</dt><dd>"+tt.path+"</dd>")
			assert.Contains(t, body, "<dt>request.method</dt><dd>GET</dd>")
		})
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	w := setup(t).Do(httptest.NewRequest(http.MethodGet, "/no/such/page", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404")
}
