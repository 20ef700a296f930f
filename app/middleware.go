package app

import (
	"log/slog"
	"net/http"

	"github.com/springmovies/webclient/pkg/alert"
	"github.com/springmovies/webclient/pkg/logger"
	"github.com/springmovies/webclient/pkg/messages"
	"github.com/springmovies/webclient/pkg/session"
)

// Dependencies are the long-lived objects State is built from.
type Dependencies struct {
	Sessions *session.Manager
	Alerts   *alert.Registry
	Catalog  *messages.Catalog
	Logger   *slog.Logger
}

// Middleware builds the State of each request. It must run after the
// session and language middlewares.
func Middleware(deps Dependencies) func(http.Handler) http.Handler {
	if deps.Catalog == nil {
		deps.Catalog = messages.Default()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := session.FromContext(r.Context())
			if !ok {
				deps.Logger.ErrorContext(r.Context(), "app state without session", logger.Component("app"))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			st := &State{
				sessions: deps.Sessions,
				session:  s,
				alerts:   deps.Alerts,
				catalog:  deps.Catalog,
				lang:     messages.LanguageFromContext(r.Context()),
				w:        w,
				log:      deps.Logger,
			}
			next.ServeHTTP(w, r.WithContext(WithState(r.Context(), st)))
		})
	}
}
