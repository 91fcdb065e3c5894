// Package config exposes the environment configuration shared by the spacex
// service and CLI. Every key is read from the environment with the SPACEX_
// prefix, e.g. SPACEX_PAGE_SIZE.
package config

import (
	"time"

	"github.com/tjper/spacex/internal/favorites"
	"github.com/tjper/spacex/internal/prefs"
	"github.com/tjper/spacex/internal/spacex"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix           = "SPACEX"
	keyPort             = "PORT"
	keyAPIURL           = "API_URL"
	keyPageSize         = "PAGE_SIZE"
	keyRequestTimeout   = "REQUEST_TIMEOUT"
	keyPrefsBackend     = "PREFS_BACKEND"
	keyPrefsPath        = "PREFS_PATH"
	keyRedisAddr        = "REDIS_ADDR"
	keyRedisPassword    = "REDIS_PASSWORD"
	keyDSN              = "DSN"
	keyFavoritesKey     = "FAVORITES_KEY"
	keyHTTPReadTimeout  = "HTTP_READ_TIMEOUT"
	keyHTTPWriteTimeout = "HTTP_WRITE_TIMEOUT"
)

// Flag names that BindFlags maps onto configuration keys.
var flagKeys = map[string]string{
	"api-url":         keyAPIURL,
	"page-size":       keyPageSize,
	"request-timeout": keyRequestTimeout,
	"prefs-backend":   keyPrefsBackend,
	"prefs-path":      keyPrefsPath,
	"redis-addr":      keyRedisAddr,
	"redis-password":  keyRedisPassword,
	"dsn":             keyDSN,
	"favorites-key":   keyFavoritesKey,
}

func Load() *Config {
	c := &Config{v: viper.New()}
	c.v.SetEnvPrefix(envPrefix)
	c.v.AutomaticEnv()
	c.defaults()

	return c
}

type Config struct {
	v *viper.Viper
}

func (c *Config) defaults() {
	c.v.SetDefault(keyPort, 8080)
	c.v.SetDefault(keyAPIURL, spacex.DefaultURL)
	c.v.SetDefault(keyPageSize, 15)
	c.v.SetDefault(keyRequestTimeout, 10*time.Second)
	c.v.SetDefault(keyPrefsBackend, prefs.BackendSQLite)
	c.v.SetDefault(keyPrefsPath, "spacex.db")
	c.v.SetDefault(keyRedisAddr, "redis:6379")
	c.v.SetDefault(keyRedisPassword, "")
	c.v.SetDefault(keyDSN, "host=localhost user=postgres password=password dbname=postgres port=5432 sslmode=disable TimeZone=UTC")
	c.v.SetDefault(keyFavoritesKey, favorites.DefaultKey)
	c.v.SetDefault(keyHTTPReadTimeout, 15*time.Second)
	c.v.SetDefault(keyHTTPWriteTimeout, 30*time.Second)
}

// BindFlags binds each known flag in flags to its configuration key. A flag
// set on the command line takes precedence over the environment. Unknown
// flags are ignored.
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := c.v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) Port() int                       { return c.v.GetInt(keyPort) }
func (c Config) APIURL() string                  { return c.v.GetString(keyAPIURL) }
func (c Config) PageSize() int                   { return c.v.GetInt(keyPageSize) }
func (c Config) RequestTimeout() time.Duration   { return c.v.GetDuration(keyRequestTimeout) }
func (c Config) FavoritesKey() string            { return c.v.GetString(keyFavoritesKey) }
func (c Config) HTTPReadTimeout() time.Duration  { return c.v.GetDuration(keyHTTPReadTimeout) }
func (c Config) HTTPWriteTimeout() time.Duration { return c.v.GetDuration(keyHTTPWriteTimeout) }

// Prefs describes the configured preference backend.
func (c Config) Prefs() prefs.Config {
	return prefs.Config{
		Backend:       c.v.GetString(keyPrefsBackend),
		Path:          c.v.GetString(keyPrefsPath),
		RedisAddr:     c.v.GetString(keyRedisAddr),
		RedisPassword: c.v.GetString(keyRedisPassword),
		DSN:           c.v.GetString(keyDSN),
	}
}
