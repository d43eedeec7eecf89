package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
)

const (
	StatusConnected     = "connected"
	StatusDisconnected  = "disconnected"
	StatusNotConfigured = "not configured"
)

// Status reports each backing service. Optional services that are switched
// off show as "not configured" and do not make the process unhealthy.
type Status struct {
	NATS  string `json:"nats"`
	Redis string `json:"redis"`
}

// Checker probes the optional NATS and Redis connections.
type Checker struct {
	nc          *nats.Conn
	redisClient *redis.Client
}

// NewChecker creates a checker. Either argument may be nil.
func NewChecker(nc *nats.Conn, redisClient *redis.Client) *Checker {
	return &Checker{
		nc:          nc,
		redisClient: redisClient,
	}
}

// Check runs the probes.
func (h *Checker) Check(ctx context.Context) *Status {
	status := &Status{NATS: StatusNotConfigured, Redis: StatusNotConfigured}

	if h.nc != nil {
		if h.nc.IsConnected() {
			status.NATS = StatusConnected
		} else {
			status.NATS = StatusDisconnected
		}
	}

	if h.redisClient != nil {
		redisCtx, redisCancel := context.WithTimeout(ctx, 2*time.Second)
		defer redisCancel()

		if err := h.redisClient.Ping(redisCtx).Err(); err == nil {
			status.Redis = StatusConnected
		} else {
			status.Redis = StatusDisconnected
		}
	}

	return status
}

// Healthy reports whether no configured service is down.
func (s *Status) Healthy() bool {
	return s.NATS != StatusDisconnected && s.Redis != StatusDisconnected
}

// IsHealthy runs Check and reports the outcome.
func (h *Checker) IsHealthy(ctx context.Context) bool {
	return h.Check(ctx).Healthy()
}

// ServeHTTP answers 200 with the status, or 503 when a configured service is down.
func (h *Checker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := h.Check(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if status.Healthy() {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(status)
}
