package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/springmovies/webclient/pkg/cookie"
	"github.com/springmovies/webclient/pkg/logger"
)

// Manager ties the token transport to the session store.
type Manager struct {
	store     Store
	transport Transport
	cookies   *cookie.Manager
	config    Config
	log       *slog.Logger
}

// New creates a Manager. Without WithStore sessions are kept in memory;
// without WithTransport a cookie manager is required.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}
	if m.transport == nil {
		if m.cookies == nil {
			panic("session: cookie manager is required when using default cookie transport")
		}
		m.transport = NewCookieTransport(m.cookies, m.config.CookieName, m.config.SecureCookies)
	}
	return m
}

// NewFromConfig is New with cfg applied first.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}

// Load returns the session referenced by the request, if any.
func (m *Manager) Load(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, err
	}
	return m.store.Get(ctx, token)
}

// Ensure returns the request's session, creating an anonymous one when the
// request carries none or an unusable one. Live sessions get a sliding
// expiry at most once per ActivityUpdateThreshold.
func (m *Manager) Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	s, err := m.Load(ctx, r)
	if err == nil {
		if time.Since(s.LastActivityAt) >= m.config.ActivityUpdateThreshold {
			m.extend(s)
			if err := m.store.Update(ctx, s); err != nil {
				m.log.WarnContext(ctx, "session activity update failed", logger.SessionID(s.ID), logger.Error(err))
			} else {
				_ = m.transport.SetToken(w, s.Token, m.config.IdleTimeout(s.IsAuthenticated()))
			}
		}
		return s, nil
	}
	if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrSessionExpired) {
		return nil, err
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	s = NewSession(token, m.config.AnonIdleTimeout)
	if err := m.store.Create(ctx, s); err != nil {
		return nil, err
	}
	if err := m.transport.SetToken(w, s.Token, m.config.AnonIdleTimeout); err != nil {
		_ = m.store.Delete(ctx, s.Token)
		return nil, err
	}
	return s, nil
}

// SetUser signs user into s. The token is rotated; the session ID is kept.
func (m *Manager) SetUser(ctx context.Context, w http.ResponseWriter, s *Session, user User) error {
	return m.rotate(ctx, w, s, &user)
}

// ClearUser signs the user out of s. The token is rotated; the session ID is kept.
func (m *Manager) ClearUser(ctx context.Context, w http.ResponseWriter, s *Session) error {
	return m.rotate(ctx, w, s, nil)
}

func (m *Manager) rotate(ctx context.Context, w http.ResponseWriter, s *Session, user *User) error {
	if s == nil {
		return ErrInvalidSession
	}
	token, err := generateToken()
	if err != nil {
		return err
	}
	prev := *s
	s.Token = token
	s.User = user
	m.extend(s)

	if err := m.store.Create(ctx, s); err != nil {
		*s = prev
		return err
	}
	_ = m.store.Delete(ctx, prev.Token)
	return m.transport.SetToken(w, s.Token, m.config.IdleTimeout(s.IsAuthenticated()))
}

// Destroy deletes the request's session and its cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if token, err := m.transport.GetToken(r); err == nil {
		_ = m.store.Delete(ctx, token)
	}
	return m.transport.ClearToken(w)
}

func (m *Manager) extend(s *Session) {
	s.Touch()
	expires := s.LastActivityAt.Add(m.config.IdleTimeout(s.IsAuthenticated()))
	if limit := s.CreatedAt.Add(m.config.MaxLifetime); m.config.MaxLifetime > 0 && limit.Before(expires) {
		expires = limit
	}
	s.ExpiresAt = expires
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
