package session

import (
	"time"

	"github.com/google/uuid"
)

// User is the signed-in account as returned by the auth API.
// Token is the API bearer token for calls made on the user's behalf.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Session is a browser session. ID is stable for the lifetime of the
// session; Token rotates whenever the signed-in user changes.
type Session struct {
	ID             uuid.UUID `json:"id"`
	Token          string    `json:"token"`
	User           *User     `json:"user,omitempty"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewSession creates an anonymous session that expires after ttl.
func NewSession(token string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:             uuid.New(),
		Token:          token,
		ExpiresAt:      now.Add(ttl),
		LastActivityAt: now,
		CreatedAt:      now,
	}
}

// IsAuthenticated reports whether a user is signed in.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.User != nil
}

func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// Touch updates the last activity time.
func (s *Session) Touch() {
	if s != nil {
		s.LastActivityAt = time.Now()
	}
}

func (s *Session) clone() *Session {
	c := *s
	if s.User != nil {
		u := *s.User
		c.User = &u
	}
	return &c
}
