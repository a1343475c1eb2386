package services

import (
	"net/http"
	"time"

	"github.com/wso2/identity-event-analytics-service/internal/analytics/handler"
	"github.com/wso2/identity-event-analytics-service/internal/system/config"
	"github.com/wso2/identity-event-analytics-service/internal/system/constants"
	"github.com/wso2/identity-event-analytics-service/internal/system/middleware"
)

// AnalyticsService exposes the read-side aggregation surface.
type AnalyticsService struct {
	analyticsHandler *handler.AnalyticsHandler
	limiter          *middleware.RateLimiter
}

// NewAnalyticsService creates a new AnalyticsService instance and registers its routes.
func NewAnalyticsService(mux *http.ServeMux, apiBasePath string) *AnalyticsService {

	rateConf := config.GetEASRuntime().Config.RateLimit
	instance := &AnalyticsService{
		analyticsHandler: handler.NewAnalyticsHandler(),
		limiter:          middleware.NewRateLimiter(rateConf.AnalyticsPerMinute, time.Minute),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

// RegisterRoutes registers the analytics routes. Every endpoint requires
// a bearer token and is throttled per user.
func (s *AnalyticsService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	basePath := apiBasePath + "/" + constants.AnalyticsApiPath

	mux.HandleFunc("GET "+basePath+"/events/summary",
		authenticated(s.limiter, s.analyticsHandler.GetEventSummary))
	mux.HandleFunc("GET "+basePath+"/events/timeline",
		authenticated(s.limiter, s.analyticsHandler.GetEventTimeline))
	mux.HandleFunc("GET "+basePath+"/users/{userId}",
		authenticated(s.limiter, s.analyticsHandler.GetUserAnalytics))
	mux.HandleFunc("GET "+basePath+"/apps/{appId}/overview",
		authenticated(s.limiter, s.analyticsHandler.GetAppOverview))
}
