package services

import (
	"net/http"
	"time"

	"github.com/wso2/identity-event-analytics-service/internal/events/handler"
	"github.com/wso2/identity-event-analytics-service/internal/system/config"
	"github.com/wso2/identity-event-analytics-service/internal/system/constants"
	"github.com/wso2/identity-event-analytics-service/internal/system/middleware"
)

// EventService exposes the API-key-gated ingestion surface.
type EventService struct {
	eventHandler *handler.EventHandler
	limiter      *middleware.RateLimiter
}

// NewEventService creates a new EventService instance and registers its routes.
func NewEventService(mux *http.ServeMux, apiBasePath string) *EventService {

	rateConf := config.GetEASRuntime().Config.RateLimit
	instance := &EventService{
		eventHandler: handler.NewEventHandler(),
		limiter:      middleware.NewRateLimiter(rateConf.IngestPerMinute, time.Minute),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

// RegisterRoutes registers the ingestion routes. Requests are throttled
// per presented API key, which scopes the budget to one app; requests
// without a key fall back to the client address and fail in the handler.
func (s *EventService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	basePath := apiBasePath + "/" + constants.EventsApiPath

	mux.HandleFunc("POST "+basePath+"/track", s.limited(s.eventHandler.TrackEvent))
	mux.HandleFunc("POST "+basePath+"/track/batch", s.limited(s.eventHandler.TrackBatch))
}

func (s *EventService) limited(next http.HandlerFunc) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(constants.APIKeyHeader)
		if key == "" {
			key = middleware.ClientKey(r)
		}
		if !s.limiter.Enforce(w, key) {
			return
		}
		next(w, r)
	}
}
