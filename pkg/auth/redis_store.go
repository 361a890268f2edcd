package auth

import (
	"context"
	"errors"

	"github.com/eventify-app/eventify/pkg/redis"
)

// RedisStore adapts redis.Storage to Store.
type RedisStore struct {
	storage *redis.Storage
}

// NewRedisStore wraps storage.
func NewRedisStore(storage *redis.Storage) *RedisStore {
	return &RedisStore{storage: storage}
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := r.storage.Get(ctx, key)
	if err != nil {
		return "", false, errors.Join(ErrStoreFailed, err)
	}
	return string(v), ok, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := r.storage.Set(ctx, key, []byte(value)); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if err := r.storage.Delete(ctx, keys...); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}
