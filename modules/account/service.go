package account

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/springmovies/webclient/app"
	"github.com/springmovies/webclient/handler"
	"github.com/springmovies/webclient/pkg/authapi"
	"github.com/springmovies/webclient/pkg/binder"
	"github.com/springmovies/webclient/pkg/routegate"
	"github.com/springmovies/webclient/views"
)

// AuthAPI is the remote account API.
type AuthAPI interface {
	SignUp(ctx context.Context, creds authapi.Credentials) (authapi.User, error)
	SignIn(ctx context.Context, creds authapi.Credentials) (authapi.User, error)
	SignOut(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, token string, pw authapi.Passwords) error
}

// Service serves the sign-up, sign-in, sign-out and change-password pages.
type Service struct {
	api          AuthAPI
	errorHandler handler.ErrorHandler[app.Context]
	log          *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

func WithErrorHandler(h handler.ErrorHandler[app.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(api AuthAPI, opts ...Option) *Service {
	s := &Service{
		api: api,
		log: slog.Default(),
	}
	s.errorHandler = handler.ErrorHandlerFor[app.Context](handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage,
		ErrorToast: views.ErrorToast,
	}))
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes returns the module's entries of the route table.
func (s *Service) Routes() routegate.Table {
	getPost := []string{http.MethodGet, http.MethodPost}
	return routegate.Table{
		{Pattern: "/sign-up", Methods: getPost, Handler: wrap(s, s.signUp)},
		{Pattern: "/sign-in", Methods: getPost, Handler: wrap(s, s.signIn)},
		{Pattern: "/sign-out", Methods: []string{http.MethodGet}, RequireAuth: true, Handler: wrap(s, s.signOut)},
		{Pattern: "/change-password", Methods: getPost, RequireAuth: true, Handler: wrap(s, s.changePassword)},
	}
}

func wrap[R any](s *Service, h handler.HandlerFunc[app.Context, R]) http.Handler {
	return handler.Wrap(h,
		handler.WithContextFactory[app.Context, R](app.NewContext),
		handler.WithBinders[app.Context, R](binder.Form()),
		handler.WithErrorHandler[app.Context, R](s.errorHandler),
	)
}

func isSubmit(ctx app.Context) bool {
	return ctx.Request().Method == http.MethodPost
}
