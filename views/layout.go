package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/springmovies/webclient/app"
	"github.com/springmovies/webclient/pkg/alert"
	"github.com/springmovies/webclient/pkg/session"
)

const (
	bootstrapCSS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"
	datastarJS   = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"
)

// Page is what every full page needs besides its body.
type Page struct {
	Title  string
	User   *session.User
	Alerts []alert.Record
}

// Layout renders the document shell: head, navigation, alerts and body.
func Layout(p Page, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		title := "Spring Movies"
		if p.Title != "" {
			title = p.Title + " | Spring Movies"
		}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title><link rel="stylesheet" href="` + bootstrapCSS + `">`)
		h.raw(`<script type="module" src="` + datastarJS + `"></script></head><body>`)
		h.render(ctx, Header(p.User))
		h.render(ctx, AlertList(p.Alerts))
		h.raw(`<main class="container">`)
		h.render(ctx, body)
		h.raw(`</main></body></html>`)
	})
}

// Header is the navigation bar.
func Header(user *session.User) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<header id="header"><nav class="navbar navbar-expand-md navbar-dark bg-primary mb-3"><div class="container">`)
		h.raw(`<a class="navbar-brand" href="/">Spring Movies 🎥</a>`)
		if user != nil {
			h.raw(`<span class="navbar-text me-auto">Welcome, `)
			h.text(user.Email)
			h.raw(`</span>`)
		}
		h.raw(`<ul class="navbar-nav ms-auto">`)
		navLink(h, "/", "Home")
		if user != nil {
			navLink(h, "/change-password", "Change Password")
			navLink(h, "/sign-out", "Sign Out")
		} else {
			navLink(h, "/sign-up", "Sign Up")
			navLink(h, "/sign-in", "Sign In")
		}
		h.raw(`</ul></div></nav></header>`)
	})
}

func navLink(h *html, href, label string) {
	h.raw(`<li class="nav-item"><a class="nav-link" href="`)
	h.text(href)
	h.raw(`">`)
	h.text(label)
	h.raw(`</a></li>`)
}

// NewPage builds the page frame for the current request.
func NewPage(st *app.State) Page {
	if st == nil {
		return Page{}
	}
	return Page{User: st.User(), Alerts: st.Alerts()}
}
