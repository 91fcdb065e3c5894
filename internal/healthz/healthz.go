// Package healthz provides an API enabling the support of service health
// checks. The service reports healthy once started, and only while its
// dependencies respond to a ping.
package healthz

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pinger is a dependency whose reachability determines health.
type Pinger interface {
	Ping(context.Context) error
}

// DefaultPingTimeout bounds each dependency ping.
const DefaultPingTimeout = 2 * time.Second

// NewHTTP creates an HTTP instance checking each of pingers.
func NewHTTP(logger *zap.Logger, pingers ...Pinger) *HTTP {
	return &HTTP{
		logger:  logger,
		pingers: pingers,
		timeout: DefaultPingTimeout,
		mutex:   new(sync.RWMutex),
		healthy: false,
	}
}

// HTTP provides an HTTP handler to correctly handle HTTP-based health checks.
type HTTP struct {
	logger  *zap.Logger
	pingers []Pinger
	timeout time.Duration

	mutex *sync.RWMutex
	// healthy indicates if the HTTP health check should report healthy to
	// clients.
	healthy bool
}

// ServeHTTP implements the http.Handler interface.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.IsHealthy() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	for _, pinger := range h.pingers {
		if err := pinger.Ping(ctx); err != nil {
			h.logger.Warn("health check ping failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

// IsHealthy indicates if the HTTP instance is indicating it is healthy during
// health checks. See Healthy() and Sick() to mutate the health of the HTTP
// instance.
func (h *HTTP) IsHealthy() bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.healthy
}

// Healthy mutates the HTTP instance to communicate a status of "healthy" during
// health checks.
func (h *HTTP) Healthy() {
	h.mutex.Lock()
	h.healthy = true
	h.mutex.Unlock()
}

// Sick mutates the HTTP instance to communicate a status of "sick" during
// health checks.
func (h *HTTP) Sick() {
	h.mutex.Lock()
	h.healthy = false
	h.mutex.Unlock()
}
