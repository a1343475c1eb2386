package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
)

func TestParseFilterReadsQueryParameters(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet,
		"/api/analytics/summary?appId=app-1&eventType=page_view&startDate=2026-01-01&endDate=2026-01-31", nil)

	filter, err := parseFilter(r)
	require.NoError(t, err)

	assert.Equal(t, "app-1", filter.AppID)
	assert.Equal(t, "page_view", filter.EventType)
	require.NotNil(t, filter.StartDate)
	require.NotNil(t, filter.EndDate)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)
	// A plain end date covers the whole day.
	assert.Equal(t, 23, filter.EndDate.Hour())
	assert.Equal(t, 31, filter.EndDate.Day())
}

func TestParseFilterAcceptsRFC3339(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet,
		"/api/analytics/timeline?startDate=2026-01-01T12:30:00Z", nil)

	filter, err := parseFilter(r)
	require.NoError(t, err)

	require.NotNil(t, filter.StartDate)
	assert.Equal(t, 12, filter.StartDate.Hour())
	assert.Nil(t, filter.EndDate)
}

func TestParseFilterWithoutParameters(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil)

	filter, err := parseFilter(r)
	require.NoError(t, err)

	assert.Empty(t, filter.AppID)
	assert.Empty(t, filter.EventType)
	assert.Nil(t, filter.StartDate)
	assert.Nil(t, filter.EndDate)
}

func TestParseFilterRejectsMalformedDate(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet,
		"/api/analytics/summary?startDate=January+1st", nil)

	_, err := parseFilter(r)
	require.Error(t, err)

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
}
