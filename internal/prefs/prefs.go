// Package prefs provides key/value preference stores. A preference store maps
// a string key to an opaque byte value and is used to persist small pieces of
// local state, such as the saved launches collection.
package prefs

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// ErrKeyDNE indicates the requested key does not exist.
	ErrKeyDNE = errors.New("preference key does not exist")

	// ErrUnknownBackend indicates Open was called with an unsupported backend
	// name.
	ErrUnknownBackend = errors.New("unknown preference backend")
)

//go:embed migrations
var migrations embed.FS

// Store is the API every preference backend implements.
type Store interface {
	// Get retrieves the value stored under key. ErrKeyDNE is returned when
	// key has no value.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value in a single
	// write.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Ping checks the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases the backend's resources.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config describes the preference backend Open should construct. Only the
// fields relevant to Backend are read.
type Config struct {
	Backend string

	// Path is the SQLite database file.
	Path string

	RedisAddr     string
	RedisPassword string

	// DSN is the Postgres connection string.
	DSN string
}

// Open constructs, connects, and migrates the backend described by cfg.
func Open(ctx context.Context, logger *zap.Logger, cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendSQLite:
		return OpenSQLite(ctx, cfg.Path)
	case BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		store := NewRedis(rdb)
		if err := store.Ping(ctx); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("ping redis; addr: %s, error: %w", cfg.RedisAddr, err)
		}
		return store, nil
	case BackendPostgres:
		return OpenPostgres(ctx, logger, cfg.DSN)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("open preferences; backend: %q, error: %w", cfg.Backend, ErrUnknownBackend)
	}
}
