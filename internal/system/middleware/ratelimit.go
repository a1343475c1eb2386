/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
	"github.com/wso2/identity-event-analytics-service/internal/system/utils"
)

// maxTrackedKeys caps the number of buckets held at once. Unauthenticated
// callers control the key space on the ingestion surface, so the map
// must not grow with every garbage key they present.
const maxTrackedKeys = 10000

// idleEviction is how long a key may go unseen before its bucket is
// reclaimable. An evicted key that returns simply starts a fresh bucket.
const idleEviction = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps a token bucket per caller key. Keys are API keys on
// the ingestion surface and user ids or client addresses elsewhere.
type RateLimiter struct {
	buckets map[string]*bucket
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
}

// NewRateLimiter allows eventsPerWindow requests per window for each
// distinct key.
func NewRateLimiter(eventsPerWindow int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(float64(eventsPerWindow) / window.Seconds()),
		burst:   eventsPerWindow,
	}
}

// Allow reports whether a request under the given key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	entry, ok := rl.buckets[key]
	if !ok {
		if len(rl.buckets) >= maxTrackedKeys {
			rl.evict(now)
		}
		entry = &bucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[key] = entry
	}
	entry.lastSeen = now
	rl.mu.Unlock()

	return entry.limiter.Allow()
}

// evict reclaims every idle bucket, and failing that the least recently
// seen one, so the map stays bounded at maxTrackedKeys. Runs under the
// limiter lock, only when the map is at capacity.
func (rl *RateLimiter) evict(now time.Time) {
	var oldestKey string
	var oldest time.Time
	for key, entry := range rl.buckets {
		if now.Sub(entry.lastSeen) > idleEviction {
			delete(rl.buckets, key)
			continue
		}
		if oldestKey == "" || entry.lastSeen.Before(oldest) {
			oldestKey = key
			oldest = entry.lastSeen
		}
	}
	if len(rl.buckets) >= maxTrackedKeys && oldestKey != "" {
		delete(rl.buckets, oldestKey)
	}
}

// Enforce writes a 429 envelope and returns false when the key is over
// its budget.
func (rl *RateLimiter) Enforce(w http.ResponseWriter, key string) bool {
	if rl.Allow(key) {
		return true
	}
	utils.HandleError(w, errors2.NewClientError(errors2.RATE_LIMIT_EXCEEDED, http.StatusTooManyRequests))
	return false
}

// ClientKey resolves the limiter key for an unauthenticated request.
func ClientKey(r *http.Request) string {
	return r.RemoteAddr
}
