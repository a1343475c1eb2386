package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wso2/identity-event-analytics-service/internal/events/model"
	"github.com/wso2/identity-event-analytics-service/internal/events/store"
	"github.com/wso2/identity-event-analytics-service/internal/system/cache"
	"github.com/wso2/identity-event-analytics-service/internal/system/constants"
	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
	"github.com/wso2/identity-event-analytics-service/internal/system/log"
)

type EventsServiceInterface interface {
	TrackEvent(appID, ownerUserID string, request model.TrackRequest, meta model.ClientMetadata) error
	TrackBatch(appID, ownerUserID string, request model.BatchTrackRequest, meta model.ClientMetadata) (int, error)
}

// EventsService is the default implementation of the EventsServiceInterface.
type EventsService struct{}

// GetEventsService creates a new instance of EventsService.
func GetEventsService() EventsServiceInterface {

	return &EventsService{}
}

// TrackEvent validates and persists one event for the authenticated
// app, then drops the owner's cached aggregates.
func (es *EventsService) TrackEvent(appID, ownerUserID string, request model.TrackRequest, meta model.ClientMetadata) error {

	if request.EventType == "" {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_EVENT.Code,
			Message:     errors2.INVALID_EVENT.Message,
			Description: "Event type is required.",
		}, http.StatusBadRequest)
	}

	event := buildEvent(appID, request, meta)
	if err := store.AddEvent(event); err != nil {
		log.GetLogger().Debug(fmt.Sprintf("failed to persist event for app: %s", appID), log.Error(err))
		return errors2.NewServerError(errors2.ADD_EVENT, err)
	}

	invalidateAggregates(ownerUserID)
	return nil
}

// TrackBatch persists up to MaxBatchSize events as one atomic unit.
// Entries without an event type are skipped rather than failing the
// batch; an oversized or empty array rejects the whole request. The
// returned count is the number of rows actually written.
func (es *EventsService) TrackBatch(appID, ownerUserID string, request model.BatchTrackRequest, meta model.ClientMetadata) (int, error) {

	if len(request.Events) == 0 {
		return 0, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_EVENT.Code,
			Message:     errors2.INVALID_EVENT.Message,
			Description: "Events array is required.",
		}, http.StatusBadRequest)
	}
	if len(request.Events) > constants.MaxBatchSize {
		return 0, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_EVENT.Code,
			Message:     errors2.INVALID_EVENT.Message,
			Description: fmt.Sprintf("Maximum %d events per batch.", constants.MaxBatchSize),
		}, http.StatusBadRequest)
	}

	events := make([]model.Event, 0, len(request.Events))
	for _, entry := range request.Events {
		if entry.EventType == "" {
			continue
		}
		events = append(events, buildEvent(appID, entry, meta))
	}

	if len(events) > 0 {
		if err := store.AddEvents(events); err != nil {
			log.GetLogger().Debug(fmt.Sprintf("failed to persist event batch for app: %s", appID), log.Error(err))
			return 0, errors2.NewServerError(errors2.ADD_EVENT_BATCH, err)
		}
		log.GetLogger().Debug(fmt.Sprintf("persisted event batch for app: %s", appID),
			log.Int("count", len(events)))
	}

	invalidateAggregates(ownerUserID)
	return len(events), nil
}

// buildEvent assembles the persisted row: the payload plus the shared
// request-level client metadata and a server-assigned timestamp.
func buildEvent(appID string, request model.TrackRequest, meta model.ClientMetadata) model.Event {

	return model.Event{
		ID:           uuid.New().String(),
		AppID:        appID,
		EventType:    request.EventType,
		UserID:       request.UserID,
		SessionID:    request.SessionID,
		URL:          request.URL,
		Referrer:     request.Referrer,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
		Browser:      meta.Browser,
		OS:           meta.OS,
		Device:       meta.Device,
		ScreenWidth:  request.ScreenWidth,
		ScreenHeight: request.ScreenHeight,
		Metadata:     request.Metadata,
		CreatedAt:    time.Now().UTC(),
	}
}

// invalidateAggregates drops every cached aggregate the app's owner
// could have computed. Coarse on purpose: one sweep per write request
// keeps reads from ever observing stale-after-write data.
func invalidateAggregates(ownerUserID string) {
	cache.GetCache().InvalidateNamespace(ownerUserID)
}
