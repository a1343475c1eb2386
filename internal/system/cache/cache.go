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

package cache

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wso2/identity-event-analytics-service/internal/system/log"
)

type CacheItem struct {
	Value      interface{}
	Expiration time.Time
}

// Cache is a TTL cache with per-namespace key tracking. Aggregates are
// registered under the owning user's namespace so one event write can
// drop every derived value for that tenant without scanning the key
// space.
type Cache struct {
	items      map[string]CacheItem
	namespaces map[string]map[string]struct{}
	mutex      sync.RWMutex
	ttl        time.Duration
}

// NewCache creates a new cache with a TTL (time-to-live).
func NewCache(defaultTTL time.Duration) *Cache {
	return &Cache{
		items:      make(map[string]CacheItem),
		namespaces: make(map[string]map[string]struct{}),
		ttl:        defaultTTL,
	}
}

// Set adds an item to the cache and registers it under the namespace.
func (c *Cache) Set(namespace, key string, value interface{}) {

	logger := log.GetLogger()
	logger.Debug(fmt.Sprint("Setting cache for key: ", key))
	c.mutex.Lock()
	defer c.mutex.Unlock()

	expiration := time.Now().Add(c.ttl)
	c.items[key] = CacheItem{
		Value:      value,
		Expiration: expiration,
	}
	if namespace != "" {
		keys, ok := c.namespaces[namespace]
		if !ok {
			keys = make(map[string]struct{})
			c.namespaces[namespace] = keys
		}
		keys[key] = struct{}{}
	}
}

// Get retrieves an item from the cache.
func (c *Cache) Get(key string) (interface{}, bool) {

	logger := log.GetLogger()
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, found := c.items[key]
	if !found {
		logger.Debug(fmt.Sprint("Cache not found for key: ", key))
		return nil, false
	}
	if time.Now().After(item.Expiration) {
		logger.Debug(fmt.Sprint("Cache expired for key: ", key))
		return nil, false
	}

	return item.Value, true
}

// Delete removes an item from the cache.
func (c *Cache) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.items, key)
}

// InvalidateNamespace removes every item registered under the namespace.
func (c *Cache) InvalidateNamespace(namespace string) {

	logger := log.GetLogger()
	logger.Debug(fmt.Sprint("Invalidating cache namespace: ", namespace))
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for key := range c.namespaces[namespace] {
		delete(c.items, key)
	}
	delete(c.namespaces, namespace)
}

// BuildKey derives a deterministic cache key from a prefix and a
// parameter set. Parameters are sorted by name and empty values are
// skipped, so two requests with the same effective parameters always
// map to the same key regardless of argument order.
func BuildKey(prefix string, params map[string]string) string {

	names := make([]string, 0, len(params))
	for name, value := range params {
		if value == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(prefix)
	for _, name := range names {
		b.WriteString(":")
		b.WriteString(name)
		b.WriteString(":")
		b.WriteString(params[name])
	}
	return b.String()
}

var (
	instance *Cache
	once     sync.Once
)

// Init creates the process-wide aggregation cache.
func Init(defaultTTL time.Duration) {
	once.Do(func() {
		instance = NewCache(defaultTTL)
	})
}

// GetCache returns the process-wide aggregation cache. A zero-value
// cache with a short TTL is created lazily so callers never observe a
// nil cache even before Init runs.
func GetCache() *Cache {
	once.Do(func() {
		instance = NewCache(time.Minute)
	})
	return instance
}
