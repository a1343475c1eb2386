package handler

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"

	keyprovider "github.com/wso2/identity-event-analytics-service/internal/api_keys/provider"
	"github.com/wso2/identity-event-analytics-service/internal/events/model"
	"github.com/wso2/identity-event-analytics-service/internal/events/provider"
	"github.com/wso2/identity-event-analytics-service/internal/system/constants"
	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
	"github.com/wso2/identity-event-analytics-service/internal/system/useragent"
	"github.com/wso2/identity-event-analytics-service/internal/system/utils"
)

type EventHandler struct{}

func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// TrackEvent ingests a single event for the app resolved from the
// presented API key.
func (eh *EventHandler) TrackEvent(w http.ResponseWriter, r *http.Request) {

	apiKeyService := keyprovider.NewAPIKeysProvider().GetAPIKeyService()
	resolved, err := apiKeyService.Authenticate(r.Header.Get(constants.APIKeyHeader))
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var request model.TrackRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_EVENT.Code,
			Message:     errors2.INVALID_EVENT.Message,
			Description: utils.HandleDecodeError(err, "event"),
		}, http.StatusBadRequest))
		return
	}

	eventsService := provider.NewEventsProvider().GetEventsService()
	if err := eventsService.TrackEvent(resolved.AppID, resolved.OwnerUserID, request, clientMetadata(r)); err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, nil, "Event tracked successfully")
}

// TrackBatch ingests up to MaxBatchSize events as one atomic unit.
func (eh *EventHandler) TrackBatch(w http.ResponseWriter, r *http.Request) {

	apiKeyService := keyprovider.NewAPIKeysProvider().GetAPIKeyService()
	resolved, err := apiKeyService.Authenticate(r.Header.Get(constants.APIKeyHeader))
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var request model.BatchTrackRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_EVENT.Code,
			Message:     errors2.INVALID_EVENT.Message,
			Description: utils.HandleDecodeError(err, "event batch"),
		}, http.StatusBadRequest))
		return
	}

	eventsService := provider.NewEventsProvider().GetEventsService()
	persisted, err := eventsService.TrackBatch(resolved.AppID, resolved.OwnerUserID, request, clientMetadata(r))
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, nil, fmt.Sprintf("%d events tracked successfully", persisted))
}

// clientMetadata derives the per-request client context shared by
// every event in the request.
func clientMetadata(r *http.Request) model.ClientMetadata {

	userAgent := r.Header.Get("User-Agent")
	info := useragent.Parse(userAgent)

	return model.ClientMetadata{
		IPAddress: clientIP(r),
		UserAgent: userAgent,
		Browser:   info.Browser,
		OS:        info.OS,
		Device:    info.Device,
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// First hop is the originating client.
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
