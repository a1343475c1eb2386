package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/identity-event-analytics-service/internal/events/model"
	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
	"github.com/wso2/identity-event-analytics-service/internal/system/log"
)

func TestTrackEventRequiresEventType(t *testing.T) {
	_ = log.Init("ERROR")
	svc := GetEventsService()

	err := svc.TrackEvent("app-1", "owner-1", model.TrackRequest{}, model.ClientMetadata{})

	requireBadRequest(t, err)
}

func TestTrackBatchRequiresEvents(t *testing.T) {
	_ = log.Init("ERROR")
	svc := GetEventsService()

	_, err := svc.TrackBatch("app-1", "owner-1", model.BatchTrackRequest{}, model.ClientMetadata{})

	requireBadRequest(t, err)
}

func TestTrackBatchRejectsOversizedBatch(t *testing.T) {
	_ = log.Init("ERROR")
	svc := GetEventsService()

	events := make([]model.TrackRequest, 101)
	for i := range events {
		events[i] = model.TrackRequest{EventType: "page_view"}
	}

	_, err := svc.TrackBatch("app-1", "owner-1", model.BatchTrackRequest{Events: events}, model.ClientMetadata{})

	requireBadRequest(t, err)
}

func TestTrackBatchSkipsEntriesWithoutEventType(t *testing.T) {
	_ = log.Init("ERROR")
	svc := GetEventsService()

	// Every entry is missing its type, so nothing reaches the store
	// and the persisted count is zero.
	events := []model.TrackRequest{{UserID: "u1"}, {SessionID: "s1"}}

	persisted, err := svc.TrackBatch("app-1", "owner-1", model.BatchTrackRequest{Events: events}, model.ClientMetadata{})

	assert.NoError(t, err)
	assert.Equal(t, 0, persisted)
}

func TestBuildEventCarriesClientMetadata(t *testing.T) {
	meta := model.ClientMetadata{
		IPAddress: "192.0.2.1",
		UserAgent: "agent",
		Browser:   "Chrome 120",
		OS:        "macOS 10",
		Device:    "Desktop",
	}

	event := buildEvent("app-1", model.TrackRequest{EventType: "click", UserID: "u1"}, meta)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "app-1", event.AppID)
	assert.Equal(t, "click", event.EventType)
	assert.Equal(t, "u1", event.UserID)
	assert.Equal(t, "192.0.2.1", event.IPAddress)
	assert.Equal(t, "Chrome 120", event.Browser)
	assert.False(t, event.CreatedAt.IsZero())
}

func requireBadRequest(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
}
