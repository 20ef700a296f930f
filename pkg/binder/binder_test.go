package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/springmovies/webclient/pkg/binder"
)

type signUpRequest struct {
	Email    string   `form:"email"`
	Password string   `form:"password"`
	Confirm  string   `form:"password_confirmation"`
	Remember bool     `form:"remember"`
	Tags     []string `form:"tags"`
	Next     string   `query:"next"`
	Page     *int     `query:"page"`
	ID       string   `path:"id"`
	Internal string   `form:"-"`
	untagged string
}

func postForm(target string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	return r
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("binds tagged fields only", func(t *testing.T) {
		t.Parallel()
		r := postForm("/sign-up?next=/x", url.Values{
			"email":                 {"a@b.co"},
			"password":              {"pw"},
			"password_confirmation": {"pw2"},
			"remember":              {"on"},
			"tags":                  {"a", "b"},
			"Internal":              {"nope"},
			"next":                  {"/form"},
		})

		var req signUpRequest
		require.NoError(t, binder.Form()(r, &req))
		assert.Equal(t, "a@b.co", req.Email)
		assert.Equal(t, "pw", req.Password)
		assert.Equal(t, "pw2", req.Confirm)
		assert.True(t, req.Remember)
		assert.Equal(t, []string{"a", "b"}, req.Tags)
		assert.Empty(t, req.Internal)
		assert.Empty(t, req.Next)
	})

	t.Run("not applicable on GET", func(t *testing.T) {
		t.Parallel()
		var req signUpRequest
		err := binder.Form()(httptest.NewRequest(http.MethodGet, "/sign-up", nil), &req)
		assert.ErrorIs(t, err, binder.ErrBinderNotApplicable)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		var req signUpRequest
		err := binder.Form()(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("a=b")), &req)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("json is unsupported", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
		r.Header.Set("Content-Type", "application/json")
		var req signUpRequest
		assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrUnsupportedMediaType)
	})

	t.Run("bad bool", func(t *testing.T) {
		t.Parallel()
		var req signUpRequest
		err := binder.Form()(postForm("/", url.Values{"remember": {"maybe"}}), &req)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
	})

	t.Run("non pointer target", func(t *testing.T) {
		t.Parallel()
		var req signUpRequest
		err := binder.Form()(postForm("/", url.Values{"email": {"x"}}), req)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	var req signUpRequest
	r := httptest.NewRequest(http.MethodGet, "/?next=/home&page=3&email=ignored", nil)
	require.NoError(t, binder.Query()(r, &req))
	assert.Equal(t, "/home", req.Next)
	require.NotNil(t, req.Page)
	assert.Equal(t, 3, *req.Page)
	assert.Empty(t, req.Email)

	err := binder.Query()(httptest.NewRequest(http.MethodGet, "/?page=x", nil), &req)
	assert.ErrorIs(t, err, binder.ErrInvalidQuery)
}

func TestPath(t *testing.T) {
	t.Parallel()

	extract := func(_ *http.Request, name string) string {
		if name == "id" {
			return "42"
		}
		return ""
	}

	var req signUpRequest
	require.NoError(t, binder.Path(extract)(httptest.NewRequest(http.MethodGet, "/", nil), &req))
	assert.Equal(t, "42", req.ID)
	assert.Empty(t, req.Email)

	err := binder.Path(nil)(httptest.NewRequest(http.MethodGet, "/", nil), &req)
	assert.ErrorIs(t, err, binder.ErrInvalidPath)
}
