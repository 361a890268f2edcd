package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage is a prefixed key-value view over a Redis client.
type Storage struct {
	db     redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewStorage wraps client with the default "eventify:" prefix and no expiry.
func NewStorage(client redis.UniversalClient) *Storage {
	return &Storage{db: client, prefix: "eventify:"}
}

// NewStorageWithConfig uses cfg.KeyPrefix and cfg.SessionTTL.
func NewStorageWithConfig(client redis.UniversalClient, cfg Config) *Storage {
	return &Storage{db: client, prefix: cfg.KeyPrefix, ttl: cfg.SessionTTL}
}

// Get returns the stored value. Missing keys yield (nil, false, nil).
func (s *Storage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}
	val, err := s.db.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set stores val under key with the storage TTL.
func (s *Storage) Set(ctx context.Context, key string, val []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.db.Set(ctx, s.prefix+key, val, s.ttl).Err()
}

// Delete removes keys. Missing keys are not an error.
func (s *Storage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			return ErrEmptyKey
		}
		full = append(full, s.prefix+k)
	}
	return s.db.Del(ctx, full...).Err()
}

// Close terminates the Redis connection.
func (s *Storage) Close() error {
	return s.db.Close()
}

// Conn returns the underlying client.
func (s *Storage) Conn() redis.UniversalClient {
	return s.db
}
