package service

import (
	"net/http"
	"time"

	"github.com/wso2/identity-event-analytics-service/internal/analytics/model"
	"github.com/wso2/identity-event-analytics-service/internal/analytics/store"
	appprovider "github.com/wso2/identity-event-analytics-service/internal/apps/provider"
	"github.com/wso2/identity-event-analytics-service/internal/system/cache"
	"github.com/wso2/identity-event-analytics-service/internal/system/constants"
	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
)

// AnalyticsServiceInterface defines the read-side aggregation operations.
// Each operation reports whether the result was served from cache.
type AnalyticsServiceInterface interface {
	GetEventSummary(userID string, filter model.QueryFilter) ([]model.SummaryRow, bool, error)
	GetEventTimeline(userID, interval string, filter model.QueryFilter) ([]model.TimelineBucket, bool, error)
	GetUserAnalytics(userID, endUserID string, filter model.QueryFilter) (*model.UserAnalytics, bool, error)
	GetAppOverview(userID, appID string) (*model.AppOverview, bool, error)
}

// AnalyticsService is the default implementation of the AnalyticsServiceInterface.
type AnalyticsService struct{}

// GetAnalyticsService creates a new instance of AnalyticsService.
func GetAnalyticsService() AnalyticsServiceInterface {

	return &AnalyticsService{}
}

// GetEventSummary returns per-event-type totals and client breakdowns
// for the caller's apps, honoring the optional filters.
func (as *AnalyticsService) GetEventSummary(userID string, filter model.QueryFilter) (
	[]model.SummaryRow, bool, error) {

	cacheKey := cache.BuildKey(constants.CacheKeySummary, filterParams(userID, filter))
	if cached, ok := cache.GetCache().Get(cacheKey); ok {
		if rows, ok := cached.([]model.SummaryRow); ok {
			return rows, true, nil
		}
	}

	rows, err := store.GetEventSummary(userID, filter)
	if err != nil {
		return nil, false, errors2.NewServerError(errors2.FETCH_ANALYTICS, err)
	}

	cache.GetCache().Set(userID, cacheKey, rows)
	return rows, false, nil
}

// GetEventTimeline returns bucketed event counts for the caller's apps.
// Anything other than an hourly interval falls back to daily buckets.
func (as *AnalyticsService) GetEventTimeline(userID, interval string, filter model.QueryFilter) (
	[]model.TimelineBucket, bool, error) {

	if interval != constants.IntervalHour {
		interval = constants.IntervalDay
	}

	params := filterParams(userID, filter)
	params["interval"] = interval
	cacheKey := cache.BuildKey(constants.CacheKeyTimeline, params)
	if cached, ok := cache.GetCache().Get(cacheKey); ok {
		if buckets, ok := cached.([]model.TimelineBucket); ok {
			return buckets, true, nil
		}
	}

	buckets, err := store.GetEventTimeline(userID, interval, filter)
	if err != nil {
		return nil, false, errors2.NewServerError(errors2.FETCH_ANALYTICS, err)
	}

	cache.GetCache().Set(userID, cacheKey, buckets)
	return buckets, false, nil
}

// GetUserAnalytics returns one end-user's activity summary and recent
// events across the caller's apps.
func (as *AnalyticsService) GetUserAnalytics(userID, endUserID string, filter model.QueryFilter) (
	*model.UserAnalytics, bool, error) {

	if endUserID == "" {
		return nil, false, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_REQUEST.Code,
			Message:     errors2.INVALID_REQUEST.Message,
			Description: "User id is required.",
		}, http.StatusBadRequest)
	}

	params := filterParams(userID, filter)
	params["endUserId"] = endUserID
	cacheKey := cache.BuildKey(constants.CacheKeyUser, params)
	if cached, ok := cache.GetCache().Get(cacheKey); ok {
		if analytics, ok := cached.(*model.UserAnalytics); ok {
			return analytics, true, nil
		}
	}

	summary, err := store.GetUserSummary(userID, endUserID, filter)
	if err != nil {
		return nil, false, errors2.NewServerError(errors2.FETCH_ANALYTICS, err)
	}

	recent, err := store.GetRecentEventsByUser(userID, endUserID, filter, constants.RecentEventsLimit)
	if err != nil {
		return nil, false, errors2.NewServerError(errors2.FETCH_ANALYTICS, err)
	}

	analytics := &model.UserAnalytics{Summary: summary, RecentEvents: recent}
	cache.GetCache().Set(userID, cacheKey, analytics)
	return analytics, false, nil
}

// GetAppOverview returns the app record with its headline stats and top
// event types. Ownership is checked before any aggregation runs.
func (as *AnalyticsService) GetAppOverview(userID, appID string) (*model.AppOverview, bool, error) {

	cacheKey := cache.BuildKey(constants.CacheKeyAppOverview,
		map[string]string{"userId": userID, "appId": appID})
	if cached, ok := cache.GetCache().Get(cacheKey); ok {
		if overview, ok := cached.(*model.AppOverview); ok {
			return overview, true, nil
		}
	}

	app, err := appprovider.NewAppsProvider().GetAppService().GetApp(appID, userID)
	if err != nil {
		return nil, false, err
	}

	stats, err := store.GetAppStats(appID)
	if err != nil {
		return nil, false, errors2.NewServerError(errors2.FETCH_ANALYTICS, err)
	}

	topEvents, err := store.GetTopEventTypes(appID, constants.TopEventTypesLimit)
	if err != nil {
		return nil, false, errors2.NewServerError(errors2.FETCH_ANALYTICS, err)
	}

	overview := &model.AppOverview{App: *app, Stats: stats, TopEvents: topEvents}
	cache.GetCache().Set(userID, cacheKey, overview)
	return overview, false, nil
}

// filterParams flattens the caller identity and filters into the cache
// key parameter set.
func filterParams(userID string, filter model.QueryFilter) map[string]string {
	params := map[string]string{
		"userId":    userID,
		"appId":     filter.AppID,
		"eventType": filter.EventType,
	}
	if filter.StartDate != nil {
		params["startDate"] = filter.StartDate.Format(time.RFC3339)
	}
	if filter.EndDate != nil {
		params["endDate"] = filter.EndDate.Format(time.RFC3339)
	}
	return params
}
