package handler

import (
	"net/http"
	"time"

	"github.com/wso2/identity-event-analytics-service/internal/analytics/model"
	"github.com/wso2/identity-event-analytics-service/internal/analytics/provider"
	sysctx "github.com/wso2/identity-event-analytics-service/internal/system/context"
	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
	"github.com/wso2/identity-event-analytics-service/internal/system/utils"
)

type AnalyticsHandler struct{}

func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{}
}

// GetEventSummary returns aggregate counts per event type for the
// authenticated user's apps.
func (ah *AnalyticsHandler) GetEventSummary(w http.ResponseWriter, r *http.Request) {

	filter, err := parseFilter(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	analyticsService := provider.NewAnalyticsProvider().GetAnalyticsService()
	rows, cached, err := analyticsService.GetEventSummary(sysctx.GetUserID(r.Context()), filter)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteCached(w, rows, cached)
}

// GetEventTimeline returns bucketed event counts for the authenticated
// user's apps.
func (ah *AnalyticsHandler) GetEventTimeline(w http.ResponseWriter, r *http.Request) {

	filter, err := parseFilter(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	analyticsService := provider.NewAnalyticsProvider().GetAnalyticsService()
	buckets, cached, err := analyticsService.GetEventTimeline(
		sysctx.GetUserID(r.Context()), r.URL.Query().Get("interval"), filter)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteCached(w, buckets, cached)
}

// GetUserAnalytics returns one end-user's activity across the
// authenticated user's apps.
func (ah *AnalyticsHandler) GetUserAnalytics(w http.ResponseWriter, r *http.Request) {

	filter, err := parseFilter(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	analyticsService := provider.NewAnalyticsProvider().GetAnalyticsService()
	analytics, cached, err := analyticsService.GetUserAnalytics(
		sysctx.GetUserID(r.Context()), r.PathValue("userId"), filter)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteCached(w, analytics, cached)
}

// GetAppOverview returns the app record with its headline stats and top
// event types.
func (ah *AnalyticsHandler) GetAppOverview(w http.ResponseWriter, r *http.Request) {

	analyticsService := provider.NewAnalyticsProvider().GetAnalyticsService()
	overview, cached, err := analyticsService.GetAppOverview(
		sysctx.GetUserID(r.Context()), r.PathValue("appId"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteCached(w, overview, cached)
}

// parseFilter reads the shared analytics query parameters. Date values
// accept RFC 3339 timestamps or plain dates; a plain end date extends
// to the end of that day.
func parseFilter(r *http.Request) (model.QueryFilter, error) {

	query := r.URL.Query()
	filter := model.QueryFilter{
		AppID:     query.Get("appId"),
		EventType: query.Get("eventType"),
	}

	if raw := query.Get("startDate"); raw != "" {
		start, err := parseDate(raw, false)
		if err != nil {
			return filter, invalidDateError("startDate")
		}
		filter.StartDate = &start
	}
	if raw := query.Get("endDate"); raw != "" {
		end, err := parseDate(raw, true)
		if err != nil {
			return filter, invalidDateError("endDate")
		}
		filter.EndDate = &end
	}
	return filter, nil
}

func parseDate(raw string, endOfDay bool) (time.Time, error) {

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

func invalidDateError(param string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.INVALID_REQUEST.Code,
		Message:     errors2.INVALID_REQUEST.Message,
		Description: "Invalid " + param + ". Use an RFC 3339 timestamp or YYYY-MM-DD date.",
	}, http.StatusBadRequest)
}
