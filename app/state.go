package app

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/text/language"

	"github.com/springmovies/webclient/pkg/alert"
	"github.com/springmovies/webclient/pkg/broadcast"
	"github.com/springmovies/webclient/pkg/logger"
	"github.com/springmovies/webclient/pkg/messages"
	"github.com/springmovies/webclient/pkg/session"
)

// State is the per-request view of the application: the browser session,
// its signed-in user and its alert queue. Handlers mutate the application
// only through it. The queue is resolved on every call, so a queue pruned
// while the request runs is replaced instead of written to after Close.
type State struct {
	sessions *session.Manager
	session  *session.Session
	alerts   *alert.Registry
	catalog  *messages.Catalog
	lang     language.Tag
	w        http.ResponseWriter
	log      *slog.Logger
}

// User returns the signed-in user, or nil.
func (s *State) User() *session.User {
	return s.session.User
}

// SessionID is stable across sign-in and sign-out.
func (s *State) SessionID() string {
	return s.session.ID.String()
}

// SetUser signs user in on this browser session.
func (s *State) SetUser(ctx context.Context, user session.User) error {
	if err := s.sessions.SetUser(ctx, s.w, s.session, user); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "user signed in",
		logger.Component("app"),
		logger.UserID(user.ID),
		logger.SessionID(s.session.ID),
	)
	return nil
}

// ClearUser signs the current user out. The session and its alerts stay.
func (s *State) ClearUser(ctx context.Context) error {
	userID := ""
	if u := s.session.User; u != nil {
		userID = u.ID
	}
	if err := s.sessions.ClearUser(ctx, s.w, s.session); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "user signed out",
		logger.Component("app"),
		logger.UserID(userID),
		logger.SessionID(s.session.ID),
	)
	return nil
}

// Enqueue shows a new alert and returns its ID.
func (s *State) Enqueue(heading, message string, variant alert.Variant) string {
	return s.alerts.Enqueue(s.SessionID(), heading, message, variant)
}

// Notify enqueues the catalog message key in the request language. args
// fill its placeholders.
func (s *State) Notify(key messages.Key, variant alert.Variant, args ...string) string {
	msg := s.catalog.Get(s.lang, key, args...)
	return s.Enqueue(msg.Heading, msg.Body, variant)
}

// Dismiss closes an alert.
func (s *State) Dismiss(id string) {
	if q, ok := s.alerts.Lookup(s.SessionID()); ok {
		q.Dismiss(id)
	}
}

// Remove deletes an alert immediately.
func (s *State) Remove(id string) {
	if q, ok := s.alerts.Lookup(s.SessionID()); ok {
		q.Remove(id)
	}
}

// Alerts returns the current alerts in display order.
func (s *State) Alerts() []alert.Record {
	if q, ok := s.alerts.Lookup(s.SessionID()); ok {
		return q.Records()
	}
	return nil
}

// Alert returns one alert of the session.
func (s *State) Alert(id string) (alert.Record, bool) {
	if q, ok := s.alerts.Lookup(s.SessionID()); ok {
		return q.Get(id)
	}
	return alert.Record{}, false
}

// Subscribe returns the current alerts and the changes that follow them,
// until ctx is done or the queue closes.
func (s *State) Subscribe(ctx context.Context) ([]alert.Record, broadcast.Subscriber[alert.Event]) {
	return s.alerts.Subscribe(ctx, s.SessionID())
}

func (s *State) Language() language.Tag {
	return s.lang
}
