package session

import (
	"net/http"

	"github.com/springmovies/webclient/pkg/logger"
)

// Middleware ensures every request has a session and stores it in the context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := m.Ensure(r.Context(), w, r)
		if err != nil {
			m.log.ErrorContext(r.Context(), "session unavailable", logger.Error(err))
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}
