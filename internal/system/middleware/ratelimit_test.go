package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/identity-event-analytics-service/internal/system/log"
	"github.com/wso2/identity-event-analytics-service/internal/system/utils"
)

func TestAllowWithinBudget(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	assert.True(t, rl.Allow("app-1"))
	assert.True(t, rl.Allow("app-1"))
	assert.False(t, rl.Allow("app-1"))
}

func TestKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	assert.True(t, rl.Allow("app-1"))
	assert.False(t, rl.Allow("app-1"))
	assert.True(t, rl.Allow("app-2"))
}

func TestEnforceWrites429(t *testing.T) {
	_ = log.Init("ERROR")
	rl := NewRateLimiter(1, time.Minute)

	require.True(t, rl.Enforce(httptest.NewRecorder(), "caller"))

	w := httptest.NewRecorder()
	require.False(t, rl.Enforce(w, "caller"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var envelope utils.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.NotEmpty(t, envelope.Error)
}

func TestBucketCountStaysBounded(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	for i := 0; i < maxTrackedKeys+100; i++ {
		rl.Allow(fmt.Sprintf("key-%d", i))
	}

	assert.LessOrEqual(t, len(rl.buckets), maxTrackedKeys)
}

func TestEvictReclaimsIdleBuckets(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	rl.Allow("stale")
	rl.buckets["stale"].lastSeen = time.Now().Add(-idleEviction - time.Minute)
	rl.Allow("fresh")

	rl.mu.Lock()
	rl.evict(time.Now())
	rl.mu.Unlock()

	assert.NotContains(t, rl.buckets, "stale")
	assert.Contains(t, rl.buckets, "fresh")
}

func TestClientKey(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	r.RemoteAddr = "192.0.2.10:4711"

	assert.Equal(t, "192.0.2.10:4711", ClientKey(r))
}
