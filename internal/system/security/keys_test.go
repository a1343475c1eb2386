package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wso2/identity-event-analytics-service/internal/system/config"
)

func setupRuntime() {
	config.OverrideEASRuntime(config.Config{
		Security: config.SecurityConfig{
			APIKeySecret: "test-secret",
			BcryptCost:   4,
		},
	})
}

func TestGenerateAPIKey(t *testing.T) {
	first, err := GenerateAPIKey()
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(first, "ak_"))
	assert.Len(t, first, 67)

	second, err := GenerateAPIKey()
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestHashAPIKeyIsDeterministic(t *testing.T) {
	setupRuntime()

	hash1 := HashAPIKey("ak_abc")
	hash2 := HashAPIKey("ak_abc")
	assert.Equal(t, hash1, hash2)
	assert.Len(t, hash1, 64)

	assert.NotEqual(t, hash1, HashAPIKey("ak_abd"))
}

func TestKeyDisplayPrefix(t *testing.T) {
	assert.Equal(t, "ak_123456789", KeyDisplayPrefix("ak_123456789abcdef"))
	assert.Equal(t, "ak_1", KeyDisplayPrefix("ak_1"))
}

func TestPasswordHashing(t *testing.T) {
	setupRuntime()

	hash, err := HashPassword("s3cret")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, ComparePassword("s3cret", hash))
	assert.False(t, ComparePassword("wrong", hash))
}
