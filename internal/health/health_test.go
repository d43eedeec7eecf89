package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_NothingConfigured(t *testing.T) {
	c := NewChecker(nil, nil)
	status := c.Check(context.Background())
	assert.Equal(t, StatusNotConfigured, status.NATS)
	assert.Equal(t, StatusNotConfigured, status.Redis)
	assert.True(t, c.IsHealthy(context.Background()))

	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, *status, body)
}

func TestChecker_RedisDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewChecker(nil, client)
	assert.Equal(t, StatusDisconnected, c.Check(context.Background()).Redis)
	assert.False(t, c.IsHealthy(context.Background()))

	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
