package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFieldConstructors(t *testing.T) {
	assert.Equal(t, Field{Key: "name", Value: "value"}, String("name", "value"))
	assert.Equal(t, Field{Key: "count", Value: 7}, Int("count", 7))
	assert.Equal(t, Field{Key: "elapsed", Value: 3 * time.Second}, Duration("elapsed", 3*time.Second))

	cause := errors.New("boom")
	assert.Equal(t, Field{Key: "error", Value: cause}, Error(cause))
}
