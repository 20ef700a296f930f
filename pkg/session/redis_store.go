package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/springmovies/webclient/pkg/redis"
)

// RedisStore keeps sessions in Redis as JSON, so several web client
// instances can share them. Redis key expiry replaces the cleanup loop.
type RedisStore struct {
	storage *redis.Storage
}

// NewRedisStore stores sessions under "session:" inside storage's prefix.
func NewRedisStore(storage *redis.Storage) *RedisStore {
	return &RedisStore{storage: storage}
}

func redisKey(token string) string { return "session:" + token }

func (s *RedisStore) put(ctx context.Context, session *Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrSessionExpired
	}
	data, err := json.Marshal(session)
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	if err := s.storage.Set(ctx, redisKey(session.Token), data, ttl); err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}

func (s *RedisStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}
	return s.put(ctx, session)
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.storage.Get(ctx, redisKey(token))
	if err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	if data == nil {
		return nil, ErrSessionNotFound
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Join(ErrStore, err)
	}
	if session.IsExpired() {
		_ = s.storage.Delete(ctx, redisKey(token))
		return nil, ErrSessionExpired
	}
	return &session, nil
}

func (s *RedisStore) Update(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}
	existing, err := s.storage.Get(ctx, redisKey(session.Token))
	if err != nil {
		return errors.Join(ErrStore, err)
	}
	if existing == nil {
		return ErrSessionNotFound
	}
	return s.put(ctx, session)
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.storage.Delete(ctx, redisKey(token)); err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}
