package views_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/springmovies/webclient/handler"
	"github.com/springmovies/webclient/pkg/alert"
	"github.com/springmovies/webclient/pkg/session"
	"github.com/springmovies/webclient/views"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestHeader(t *testing.T) {
	t.Parallel()

	anon := render(t, views.Header(nil))
	assert.Contains(t, anon, "Spring Movies 🎥")
	assert.Contains(t, anon, `href="/"`)
	assert.Contains(t, anon, "Sign Up")
	assert.Contains(t, anon, "Sign In")
	assert.NotContains(t, anon, "Sign Out")
	assert.NotContains(t, anon, "Welcome")

	signedIn := render(t, views.Header(&session.User{Email: "a<b>@c.co"}))
	assert.Contains(t, signedIn, "Welcome, a&lt;b&gt;@c.co")
	assert.Contains(t, signedIn, "Change Password")
	assert.Contains(t, signedIn, "Sign Out")
	assert.NotContains(t, signedIn, "Sign Up")
}

func TestAlertItem(t *testing.T) {
	t.Parallel()

	rec := alert.Record{ID: "42", Heading: "Sign Up Success", Message: "<b>hi</b>", Variant: alert.Success, Visible: true}

	visible := render(t, views.AlertItem(rec))
	assert.Contains(t, visible, `id="alert-42"`)
	assert.Contains(t, visible, "alert-success")
	assert.Contains(t, visible, "fade show")
	assert.Contains(t, visible, "Sign Up Success")
	assert.Contains(t, visible, "&lt;b&gt;hi&lt;/b&gt;")
	assert.Contains(t, visible, "/alerts/42/dismiss")

	rec.Visible = false
	rec.Variant = alert.Danger
	hidden := render(t, views.AlertItem(rec))
	assert.Contains(t, hidden, "alert-danger")
	assert.NotContains(t, hidden, "show")

	rec.Variant = "warning"
	unknown := render(t, views.AlertItem(rec))
	assert.Contains(t, unknown, "alert-secondary")
	assert.NotContains(t, unknown, "alert-warning")
}

func TestAlertList(t *testing.T) {
	t.Parallel()

	out := render(t, views.AlertList([]alert.Record{
		{ID: "1", Message: "first", Variant: alert.Primary, Visible: true},
		{ID: "2", Message: "second", Variant: alert.Secondary, Visible: true},
	}))
	assert.Contains(t, out, `id="alerts"`)
	assert.Contains(t, out, "/alerts/stream")
	assert.Less(t, bytes.Index([]byte(out), []byte("first")), bytes.Index([]byte(out), []byte("second")))
}

func TestForms_StartEmpty(t *testing.T) {
	t.Parallel()

	out := render(t, views.SignUpForm())
	assert.Contains(t, out, `id="sign-up-form"`)
	assert.Contains(t, out, `name="email"`)
	assert.Contains(t, out, `name="password"`)
	assert.Contains(t, out, `name="password_confirmation"`)
	assert.NotContains(t, out, "value=")

	out = render(t, views.ChangePasswordForm())
	assert.Contains(t, out, `name="old"`)
	assert.Contains(t, out, `name="new"`)
	assert.Contains(t, out, `action="/change-password"`)
}

func TestPages(t *testing.T) {
	t.Parallel()

	page := views.Page{Alerts: []alert.Record{{ID: "9", Message: "m", Variant: alert.Success, Visible: true}}}

	out := render(t, views.SignInPage(page))
	assert.Contains(t, out, "<title>Sign In | Spring Movies</title>")
	assert.Contains(t, out, `id="sign-in-form"`)
	assert.Contains(t, out, `id="alert-9"`)

	out = render(t, views.RouteInspectorPage(page, views.RouteInfo{MatchID: "7", ParamID: "7", Path: "/with-router-hooks-test/7", Method: "GET"}))
	assert.Contains(t, out, "match.params.id")
	assert.Contains(t, out, "/with-router-hooks-test/7")

	out = render(t, views.ErrorPage(handler.ErrorPageParams{Error: "not_found", StatusCode: 404, RequestID: "req-1", RetryURL: "/x"}))
	assert.Contains(t, out, "404")
	assert.Contains(t, out, "req-1")

	assert.Contains(t, render(t, views.NotFoundPage(views.Page{})), "404")
	assert.Contains(t, render(t, views.HomePage(views.Page{User: &session.User{Email: "a@b.co"}})), "Signed in as a@b.co")
}

func TestErrorToast(t *testing.T) {
	t.Parallel()

	out := render(t, views.ErrorToast(handler.ErrorToastParams{Message: "bad_request", Type: "secondary", RequestID: "r1"}))
	assert.Contains(t, out, "alert-secondary")
	assert.Contains(t, out, "bad_request")
	assert.Contains(t, out, "r1")
}
