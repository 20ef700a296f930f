package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage is a prefixed byte store on top of a Redis client.
type Storage struct {
	db            redis.UniversalClient
	prefix        string
	scanBatchSize int64
}

// NewStorage wraps client. Every key is stored under prefix.
func NewStorage(client redis.UniversalClient, prefix string) *Storage {
	return &Storage{db: client, prefix: prefix, scanBatchSize: 500}
}

func (s *Storage) key(k string) string { return s.prefix + k }

// Get returns nil, nil for missing keys.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	val, err := s.db.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return val, err
}

// Set stores val under key. A zero ttl keeps the key forever.
func (s *Storage) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	return s.db.Set(ctx, s.key(key), val, ttl).Err()
}

// Delete removes key. Missing keys are not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return s.db.Del(ctx, s.key(key)).Err()
}

// Count returns the number of keys under the storage prefix, scanning in batches.
func (s *Storage) Count(ctx context.Context) (int, error) {
	var (
		cursor uint64
		total  int
	)
	for {
		batch, next, err := s.db.Scan(ctx, cursor, s.prefix+"*", s.scanBatchSize).Result()
		if err != nil {
			return 0, err
		}
		total += len(batch)
		if next == 0 {
			return total, nil
		}
		cursor = next
	}
}

// Conn returns the underlying client.
func (s *Storage) Conn() redis.UniversalClient { return s.db }
