package session

import (
	"log/slog"

	"github.com/springmovies/webclient/pkg/cookie"
)

type Option func(*Manager)

func WithStore(store Store) Option {
	return func(m *Manager) { m.store = store }
}

func WithTransport(transport Transport) Option {
	return func(m *Manager) { m.transport = transport }
}

func WithConfig(cfg Config) Option {
	return func(m *Manager) { m.config = cfg }
}

// WithCookieManager enables the default encrypted cookie transport.
func WithCookieManager(cookies *cookie.Manager) Option {
	return func(m *Manager) { m.cookies = cookies }
}

func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}
