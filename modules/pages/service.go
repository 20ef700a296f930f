package pages

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/springmovies/webclient/app"
	"github.com/springmovies/webclient/handler"
	"github.com/springmovies/webclient/pkg/binder"
	"github.com/springmovies/webclient/pkg/routegate"
	"github.com/springmovies/webclient/views"
)

// Routes returns the home page and the route inspector.
func Routes() routegate.Table {
	return routegate.Table{
		{
			Pattern: "/",
			Methods: []string{http.MethodGet},
			Handler: handler.Wrap(home,
				handler.WithContextFactory[app.Context, struct{}](app.NewContext),
			),
		},
		{
			Pattern: "/with-router-hooks-test/{id}",
			Methods: []string{http.MethodGet},
			Handler: handler.Wrap(inspect,
				handler.WithContextFactory[app.Context, InspectRequest](app.NewContext),
				handler.WithBinders[app.Context, InspectRequest](binder.Path(chi.URLParam)),
			),
		},
	}
}

// NotFound serves the 404 page. It expects to run behind app.Middleware.
func NotFound() http.Handler {
	return handler.Wrap(notFound,
		handler.WithContextFactory[app.Context, struct{}](app.NewContext),
	)
}

func home(ctx app.Context, _ struct{}) handler.Response {
	return handler.Templ(views.HomePage(views.NewPage(ctx.State())))
}

type InspectRequest struct {
	ID string `path:"id"`
}

func inspect(ctx app.Context, req InspectRequest) handler.Response {
	r := ctx.Request()
	info := views.RouteInfo{
		ParamID: req.ID,
		Path:    r.URL.Path,
		Method:  r.Method,
	}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		info.MatchID = rctx.URLParam("id")
	}
	return handler.Templ(views.RouteInspectorPage(views.NewPage(ctx.State()), info))
}

func notFound(ctx app.Context, _ struct{}) handler.Response {
	return handler.TemplWithStatus(http.StatusNotFound, views.NotFoundPage(views.NewPage(ctx.State())))
}
