package main

import (
	"log/slog"
	"net/http"
	"net/netip"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/springmovies/webclient/app"
	"github.com/springmovies/webclient/modules/account"
	"github.com/springmovies/webclient/modules/alerts"
	"github.com/springmovies/webclient/modules/pages"
	"github.com/springmovies/webclient/pkg/alert"
	"github.com/springmovies/webclient/pkg/clientip"
	"github.com/springmovies/webclient/pkg/httpserver"
	"github.com/springmovies/webclient/pkg/messages"
	"github.com/springmovies/webclient/pkg/requestid"
	"github.com/springmovies/webclient/pkg/routegate"
	"github.com/springmovies/webclient/pkg/session"
)

// routeTable is the complete page surface of the application. limit wraps
// the account routes, whose submissions reach the auth API.
func routeTable(api account.AuthAPI, limit func(http.Handler) http.Handler, log *slog.Logger) routegate.Table {
	var table routegate.Table
	table = append(table, pages.Routes()...)
	table = append(table, account.NewService(api, account.WithLogger(log)).Routes().Use(limit)...)
	table = append(table, alerts.NewService(log).Routes()...)
	return table
}

type routerDeps struct {
	Routes   routegate.Table
	Sessions *session.Manager
	Alerts   *alert.Registry
	Catalog  *messages.Catalog
	Checks   []httpserver.Check
	Logger   *slog.Logger

	// TrustedProxies may set the client IP through forwarding headers.
	TrustedProxies []netip.Prefix
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware(d.TrustedProxies...), middleware.Recoverer)

	r.Get("/health/live", httpserver.HealthCheckHandler(d.Logger))
	r.Get("/health/ready", httpserver.HealthCheckHandler(d.Logger, append(d.Checks, httpserver.Check{
		Name: "alerts",
		Fn:   d.Alerts.Healthcheck,
	})...))

	r.Group(func(r chi.Router) {
		r.Use(
			d.Sessions.Middleware,
			messages.Middleware(d.Catalog),
			app.Middleware(app.Dependencies{
				Sessions: d.Sessions,
				Alerts:   d.Alerts,
				Catalog:  d.Catalog,
				Logger:   d.Logger,
			}),
		)
		d.Routes.Mount(r, routegate.WithLogger(d.Logger))
		r.NotFound(pages.NotFound().ServeHTTP)
	})
	return r
}
