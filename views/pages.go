package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/springmovies/webclient/handler"
)

// section wraps a page body with its heading.
func section(heading string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<div class="row"><div class="col-sm-10 col-md-8 mx-auto mt-5"><h3>`)
		h.text(heading)
		h.raw(`</h3>`)
		h.render(ctx, body)
		h.raw(`</div></div>`)
	})
}

func SignUpPage(p Page) templ.Component {
	p.Title = "Sign Up"
	return Layout(p, section("Sign Up", SignUpForm()))
}

func SignInPage(p Page) templ.Component {
	p.Title = "Sign In"
	return Layout(p, section("Sign In", SignInForm()))
}

func ChangePasswordPage(p Page) templ.Component {
	p.Title = "Change Password"
	return Layout(p, section("Change Password", ChangePasswordForm()))
}

// HomePage greets the visitor.
func HomePage(p Page) templ.Component {
	return Layout(p, component(func(_ context.Context, h *html) {
		h.raw(`<div class="mt-5"><h1>Spring Movies</h1><p class="lead">`)
		if p.User != nil {
			h.raw(`Signed in as `)
			h.text(p.User.Email)
			h.raw(`.`)
		} else {
			h.raw(`Sign up or sign in to manage your movies.`)
		}
		h.raw(`</p></div>`)
	}))
}

// RouteInfo is what the route inspector shows.
type RouteInfo struct {
	// MatchID comes from the router's match.
	MatchID string
	// ParamID comes from the bound request.
	ParamID string
	Path    string
	Method  string
}

// RouteInspectorPage echoes the matched route back to the visitor.
func RouteInspectorPage(p Page, info RouteInfo) templ.Component {
	p.Title = "Router hooks"
	return Layout(p, component(func(_ context.Context, h *html) {
		h.raw(`<dl id="route-info" class="mt-5">`)
		for _, row := range [][2]string{
			{"match.params.id", info.MatchID},
			{"params.id", info.ParamID},
			{"location.pathname", info.Path},
			{"request.method", info.Method},
		} {
			h.raw(`<dt>`)
			h.text(row[0])
			h.raw(`</dt><dd>`)
			h.text(row[1])
			h.raw(`</dd>`)
		}
		h.raw(`</dl>`)
	}))
}

// NotFoundPage is served for unknown routes.
func NotFoundPage(p Page) templ.Component {
	p.Title = "Not Found"
	return Layout(p, component(func(_ context.Context, h *html) {
		h.raw(`<div class="mt-5"><h1>404</h1><p>That page does not exist. <a href="/">Go home</a>.</p></div>`)
	}))
}

// ErrorPage renders a failed request. It has no session context, so the
// navigation shows the anonymous links.
func ErrorPage(params handler.ErrorPageParams) templ.Component {
	return Layout(Page{Title: "Error"}, component(func(_ context.Context, h *html) {
		h.raw(`<div class="mt-5"><h1>`)
		h.text(strconv.Itoa(params.StatusCode))
		h.raw(`</h1><p>`)
		h.text(params.Error)
		h.raw(`</p>`)
		if params.RequestID != "" {
			h.raw(`<p class="text-muted">Request ID: <code>`)
			h.text(params.RequestID)
			h.raw(`</code></p>`)
		}
		if params.RetryURL != "" {
			h.raw(`<a class="btn btn-secondary" href="`)
			h.text(params.RetryURL)
			h.raw(`">Try again</a>`)
		}
		h.raw(`</div>`)
	}))
}
