package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wso2/identity-event-analytics-service/internal/analytics/model"
	"github.com/wso2/identity-event-analytics-service/internal/system/constants"
	dbprovider "github.com/wso2/identity-event-analytics-service/internal/system/database/provider"
)

// filterClause renders the optional query filters as additional AND
// conditions against the events table alias "e". Filter parameters are
// numbered from next onwards; the fixed parameters come before them.
func filterClause(filter model.QueryFilter, next int) (string, []interface{}) {
	var sb strings.Builder
	args := []interface{}{}

	if filter.AppID != "" {
		sb.WriteString(" AND e.app_id = $" + strconv.Itoa(next))
		args = append(args, filter.AppID)
		next++
	}
	if filter.EventType != "" {
		sb.WriteString(" AND e.event_type = $" + strconv.Itoa(next))
		args = append(args, filter.EventType)
		next++
	}
	if filter.StartDate != nil {
		sb.WriteString(" AND e.created_at >= $" + strconv.Itoa(next))
		args = append(args, *filter.StartDate)
		next++
	}
	if filter.EndDate != nil {
		sb.WriteString(" AND e.created_at <= $" + strconv.Itoa(next))
		args = append(args, *filter.EndDate)
	}
	return sb.String(), args
}

// GetEventSummary returns per-event-type totals with device, browser and
// OS breakdowns for the apps owned by ownerUserID.
func GetEventSummary(ownerUserID string, filter model.QueryFilter) ([]model.SummaryRow, error) {

	dbClient, err := dbprovider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	cond, filterArgs := filterClause(filter, 2)
	args := append([]interface{}{ownerUserID}, filterArgs...)

	query := `SELECT e.event_type,
			COUNT(*) AS total_events,
			COUNT(DISTINCT e.user_id) AS unique_users,
			COUNT(DISTINCT e.session_id) AS unique_sessions
		FROM events e
		JOIN apps a ON e.app_id = a.id
		WHERE a.user_id = $1` + cond + `
		GROUP BY e.event_type
		ORDER BY total_events DESC`

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute summary query: %w", err)
	}

	rows := make([]model.SummaryRow, 0, len(results))
	index := map[string]int{}
	for _, row := range results {
		summary := model.SummaryRow{
			EventType:        asString(row["event_type"]),
			TotalEvents:      asInt64(row["total_events"]),
			UniqueUsers:      asInt64(row["unique_users"]),
			UniqueSessions:   asInt64(row["unique_sessions"]),
			DeviceBreakdown:  map[string]int64{},
			BrowserBreakdown: map[string]int64{},
			OSBreakdown:      map[string]int64{},
		}
		index[summary.EventType] = len(rows)
		rows = append(rows, summary)
	}
	if len(rows) == 0 {
		return rows, nil
	}

	for column, assign := range map[string]func(*model.SummaryRow, string, int64){
		"device":  func(r *model.SummaryRow, k string, v int64) { r.DeviceBreakdown[k] = v },
		"browser": func(r *model.SummaryRow, k string, v int64) { r.BrowserBreakdown[k] = v },
		"os":      func(r *model.SummaryRow, k string, v int64) { r.OSBreakdown[k] = v },
	} {
		breakdownQuery := fmt.Sprintf(`SELECT e.event_type,
				COALESCE(e.%s, '%s') AS dimension,
				COUNT(*) AS event_count
			FROM events e
			JOIN apps a ON e.app_id = a.id
			WHERE a.user_id = $1%s
			GROUP BY e.event_type, dimension`, column, constants.UnknownClient, cond)

		breakdown, err := dbClient.ExecuteQuery(breakdownQuery, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to execute %s breakdown query: %w", column, err)
		}
		for _, row := range breakdown {
			if i, ok := index[asString(row["event_type"])]; ok {
				assign(&rows[i], asString(row["dimension"]), asInt64(row["event_count"]))
			}
		}
	}

	return rows, nil
}

// GetEventTimeline returns event counts bucketed by hour or day,
// oldest bucket first.
func GetEventTimeline(ownerUserID, interval string, filter model.QueryFilter) ([]model.TimelineBucket, error) {

	dbClient, err := dbprovider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	bucketFormat := "YYYY-MM-DD"
	if interval == constants.IntervalHour {
		bucketFormat = "YYYY-MM-DD HH24:00:00"
	}

	cond, filterArgs := filterClause(filter, 2)
	args := append([]interface{}{ownerUserID}, filterArgs...)

	query := fmt.Sprintf(`SELECT TO_CHAR(e.created_at, '%s') AS time_bucket,
			COUNT(*) AS event_count,
			COUNT(DISTINCT e.user_id) AS unique_users
		FROM events e
		JOIN apps a ON e.app_id = a.id
		WHERE a.user_id = $1%s
		GROUP BY time_bucket
		ORDER BY time_bucket ASC`, bucketFormat, cond)

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute timeline query: %w", err)
	}

	buckets := make([]model.TimelineBucket, 0, len(results))
	for _, row := range results {
		buckets = append(buckets, model.TimelineBucket{
			TimeBucket:  asString(row["time_bucket"]),
			EventCount:  asInt64(row["event_count"]),
			UniqueUsers: asInt64(row["unique_users"]),
		})
	}
	return buckets, nil
}

// GetUserSummary aggregates one end-user's activity across the apps
// owned by ownerUserID. Ties between equally frequent devices, browsers
// or operating systems resolve to the lexicographically smallest value.
func GetUserSummary(ownerUserID, endUserID string, filter model.QueryFilter) (model.UserSummary, error) {

	summary := model.UserSummary{
		PrimaryDevice:  constants.UnknownClient,
		PrimaryBrowser: constants.UnknownClient,
		PrimaryOS:      constants.UnknownClient,
	}

	dbClient, err := dbprovider.NewDBProvider().GetDBClient()
	if err != nil {
		return summary, fmt.Errorf("failed to get database client: %w", err)
	}

	cond, filterArgs := filterClause(filter, 3)
	args := append([]interface{}{ownerUserID, endUserID}, filterArgs...)

	query := `SELECT COUNT(*) AS total_events,
			COUNT(DISTINCT e.event_type) AS unique_event_types,
			COUNT(DISTINCT e.session_id) AS total_sessions,
			MIN(e.created_at) AS first_seen,
			MAX(e.created_at) AS last_seen,
			MODE() WITHIN GROUP (ORDER BY e.device) AS primary_device,
			MODE() WITHIN GROUP (ORDER BY e.browser) AS primary_browser,
			MODE() WITHIN GROUP (ORDER BY e.os) AS primary_os
		FROM events e
		JOIN apps a ON e.app_id = a.id
		WHERE a.user_id = $1 AND e.user_id = $2` + cond

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		return summary, fmt.Errorf("failed to execute user summary query: %w", err)
	}
	if len(results) == 0 {
		return summary, nil
	}

	row := results[0]
	summary.TotalEvents = asInt64(row["total_events"])
	summary.UniqueEventTypes = asInt64(row["unique_event_types"])
	summary.TotalSessions = asInt64(row["total_sessions"])
	summary.FirstSeen = asTimePtr(row["first_seen"])
	summary.LastSeen = asTimePtr(row["last_seen"])
	if v := asString(row["primary_device"]); v != "" {
		summary.PrimaryDevice = v
	}
	if v := asString(row["primary_browser"]); v != "" {
		summary.PrimaryBrowser = v
	}
	if v := asString(row["primary_os"]); v != "" {
		summary.PrimaryOS = v
	}
	return summary, nil
}

// GetRecentEventsByUser returns the end-user's most recent events,
// newest first, capped at limit.
func GetRecentEventsByUser(ownerUserID, endUserID string, filter model.QueryFilter,
	limit int) ([]model.RecentEvent, error) {

	dbClient, err := dbprovider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	cond, filterArgs := filterClause(filter, 3)
	args := append([]interface{}{ownerUserID, endUserID}, filterArgs...)
	args = append(args, limit)

	query := fmt.Sprintf(`SELECT e.event_type, e.url, e.created_at,
			COALESCE(e.device, '%s') AS device,
			COALESCE(e.browser, '%s') AS browser
		FROM events e
		JOIN apps a ON e.app_id = a.id
		WHERE a.user_id = $1 AND e.user_id = $2%s
		ORDER BY e.created_at DESC
		LIMIT $%d`, constants.UnknownClient, constants.UnknownClient, cond, len(args))

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute recent events query: %w", err)
	}

	events := make([]model.RecentEvent, 0, len(results))
	for _, row := range results {
		event := model.RecentEvent{
			EventType: asString(row["event_type"]),
			URL:       asString(row["url"]),
			Device:    asString(row["device"]),
			Browser:   asString(row["browser"]),
		}
		if t := asTimePtr(row["created_at"]); t != nil {
			event.CreatedAt = *t
		}
		events = append(events, event)
	}
	return events, nil
}

// GetAppStats returns the headline counters for the given app.
func GetAppStats(appID string) (model.AppStats, error) {

	stats := model.AppStats{}

	dbClient, err := dbprovider.NewDBProvider().GetDBClient()
	if err != nil {
		return stats, fmt.Errorf("failed to get database client: %w", err)
	}

	query := `SELECT COUNT(*) AS total_events,
			COUNT(DISTINCT user_id) AS total_users,
			COUNT(DISTINCT session_id) AS total_sessions,
			COUNT(DISTINCT event_type) AS unique_event_types
		FROM events
		WHERE app_id = $1`

	results, err := dbClient.ExecuteQuery(query, appID)
	if err != nil {
		return stats, fmt.Errorf("failed to execute app stats query: %w", err)
	}
	if len(results) == 0 {
		return stats, nil
	}

	row := results[0]
	stats.TotalEvents = asInt64(row["total_events"])
	stats.TotalUsers = asInt64(row["total_users"])
	stats.TotalSessions = asInt64(row["total_sessions"])
	stats.UniqueEventTypes = asInt64(row["unique_event_types"])
	return stats, nil
}

// GetTopEventTypes returns the most frequent event types for the given
// app, most frequent first, capped at limit.
func GetTopEventTypes(appID string, limit int) ([]model.EventTypeCount, error) {

	dbClient, err := dbprovider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	query := `SELECT event_type, COUNT(*) AS event_count
		FROM events
		WHERE app_id = $1
		GROUP BY event_type
		ORDER BY event_count DESC
		LIMIT $2`

	results, err := dbClient.ExecuteQuery(query, appID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute top event types query: %w", err)
	}

	counts := make([]model.EventTypeCount, 0, len(results))
	for _, row := range results {
		counts = append(counts, model.EventTypeCount{
			EventType: asString(row["event_type"]),
			Count:     asInt64(row["event_count"]),
		})
	}
	return counts, nil
}

func asString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func asInt64(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case []byte:
		parsed, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return 0
		}
		return parsed
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func asTimePtr(value interface{}) *time.Time {
	if t, ok := value.(time.Time); ok {
		return &t
	}
	return nil
}
