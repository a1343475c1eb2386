package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wso2/identity-event-analytics-service/internal/analytics/model"
)

func TestFilterClauseEmpty(t *testing.T) {
	cond, args := filterClause(model.QueryFilter{}, 2)

	assert.Empty(t, cond)
	assert.Empty(t, args)
}

func TestFilterClauseNumbersParameters(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
	filter := model.QueryFilter{
		AppID:     "app-1",
		EventType: "page_view",
		StartDate: &start,
		EndDate:   &end,
	}

	cond, args := filterClause(filter, 2)

	assert.Equal(t,
		" AND e.app_id = $2 AND e.event_type = $3 AND e.created_at >= $4 AND e.created_at <= $5",
		cond)
	assert.Equal(t, []interface{}{"app-1", "page_view", start, end}, args)
}

func TestFilterClauseSkipsUnsetFilters(t *testing.T) {
	cond, args := filterClause(model.QueryFilter{EventType: "click"}, 3)

	assert.Equal(t, " AND e.event_type = $3", cond)
	assert.Equal(t, []interface{}{"click"}, args)
}

func TestAsInt64(t *testing.T) {
	assert.Equal(t, int64(7), asInt64(int64(7)))
	assert.Equal(t, int64(7), asInt64(7))
	assert.Equal(t, int64(7), asInt64([]byte("7")))
	assert.Equal(t, int64(7), asInt64("7"))
	assert.Equal(t, int64(0), asInt64(nil))
	assert.Equal(t, int64(0), asInt64("not-a-number"))
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "x", asString("x"))
	assert.Equal(t, "x", asString([]byte("x")))
	assert.Equal(t, "", asString(nil))
}

func TestAsTimePtr(t *testing.T) {
	now := time.Now()
	ptr := asTimePtr(now)
	assert.NotNil(t, ptr)
	assert.Equal(t, now, *ptr)

	assert.Nil(t, asTimePtr(nil))
	assert.Nil(t, asTimePtr("2026-01-01"))
}
