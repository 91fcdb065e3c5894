package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// NewRedis creates a new Redis instance backed by rdb.
func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{redis: rdb}
}

// Redis is a Store backed by a Redis instance. Values are stored without
// expiration.
type Redis struct {
	redis *redis.Client
}

// Get implements Store.
func (r Redis) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyDNE
	}
	if err != nil {
		return nil, fmt.Errorf("get preference; key: %s, error: %w", key, err)
	}
	return b, nil
}

// Set implements Store.
func (r Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.redis.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("set preference; key: %s, error: %w", key, err)
	}
	return nil
}

// Delete implements Store.
func (r Redis) Delete(ctx context.Context, key string) error {
	if err := r.redis.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete preference; key: %s, error: %w", key, err)
	}
	return nil
}

// Ping implements Store.
func (r Redis) Ping(ctx context.Context) error {
	return r.redis.Ping(ctx).Err()
}

// Close implements Store.
func (r Redis) Close() error {
	return r.redis.Close()
}
