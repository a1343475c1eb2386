package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wso2/identity-event-analytics-service/internal/system/log"
)

func TestBuildKey(t *testing.T) {
	key := BuildKey("analytics:summary", map[string]string{
		"userId":    "u1",
		"appId":     "a1",
		"eventType": "page_view",
	})
	assert.Equal(t, "analytics:summary:appId:a1:eventType:page_view:userId:u1", key)
}

func TestBuildKeySkipsEmptyValues(t *testing.T) {
	key := BuildKey("analytics:summary", map[string]string{
		"userId":    "u1",
		"appId":     "",
		"eventType": "",
	})
	assert.Equal(t, "analytics:summary:userId:u1", key)
}

func TestBuildKeyIsOrderIndependent(t *testing.T) {
	a := BuildKey("analytics:timeline", map[string]string{"userId": "u1", "interval": "day"})
	b := BuildKey("analytics:timeline", map[string]string{"interval": "day", "userId": "u1"})
	assert.Equal(t, a, b)
}

func TestSetAndGet(t *testing.T) {
	_ = log.Init("ERROR")
	c := NewCache(time.Minute)

	c.Set("u1", "key1", 42)

	value, found := c.Get("key1")
	assert.True(t, found)
	assert.Equal(t, 42, value)

	_, found = c.Get("missing")
	assert.False(t, found)
}

func TestExpiredEntryIsNotReturned(t *testing.T) {
	_ = log.Init("ERROR")
	c := NewCache(-time.Second)

	c.Set("u1", "key1", "value")

	_, found := c.Get("key1")
	assert.False(t, found)
}

func TestInvalidateNamespace(t *testing.T) {
	_ = log.Init("ERROR")
	c := NewCache(time.Minute)

	c.Set("u1", "summary:u1", "a")
	c.Set("u1", "timeline:u1", "b")
	c.Set("u2", "summary:u2", "c")

	c.InvalidateNamespace("u1")

	_, found := c.Get("summary:u1")
	assert.False(t, found)
	_, found = c.Get("timeline:u1")
	assert.False(t, found)

	value, found := c.Get("summary:u2")
	assert.True(t, found)
	assert.Equal(t, "c", value)
}

func TestDelete(t *testing.T) {
	_ = log.Init("ERROR")
	c := NewCache(time.Minute)

	c.Set("u1", "key1", "value")
	c.Delete("key1")

	_, found := c.Get("key1")
	assert.False(t, found)
}
