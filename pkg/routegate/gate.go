package routegate

import (
	"log/slog"
	"net/http"

	"github.com/springmovies/webclient/handler"
	"github.com/springmovies/webclient/pkg/logger"
	"github.com/springmovies/webclient/pkg/session"
)

// DefaultRedirect is where anonymous visitors of protected routes land.
const DefaultRedirect = "/"

// Allow reports whether a protected route may be rendered for user.
func Allow(user *session.User) bool {
	return user != nil
}

type gateConfig struct {
	redirect string
	log      *slog.Logger
}

// Option configures the gate.
type Option func(*gateConfig)

// WithRedirect changes where refused requests are sent.
func WithRedirect(path string) Option {
	return func(c *gateConfig) {
		if path != "" {
			c.redirect = path
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *gateConfig) {
		if l != nil {
			c.log = l
		}
	}
}

func newGateConfig(opts []Option) gateConfig {
	cfg := gateConfig{redirect: DefaultRedirect, log: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Gate serves next when the session carries a user and redirects home
// otherwise. A refused request changes no state.
func Gate(next http.Handler, opts ...Option) http.Handler {
	cfg := newGateConfig(opts)
	return gate(next, cfg)
}

func gate(next http.Handler, cfg gateConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Allow(session.UserFromContext(r.Context())) {
			next.ServeHTTP(w, r)
			return
		}

		cfg.log.DebugContext(r.Context(), "protected route refused",
			logger.Component("routegate"),
			slog.String("path", r.URL.Path),
		)
		if err := handler.Redirect(cfg.redirect).Render(w, r); err != nil {
			cfg.log.ErrorContext(r.Context(), "gate redirect failed",
				logger.Component("routegate"),
				logger.Error(err),
			)
		}
	})
}
