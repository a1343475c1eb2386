/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package model

import (
	"time"

	appmodel "github.com/wso2/identity-event-analytics-service/internal/apps/model"
)

// QueryFilter carries the optional analytics filters as typed fields.
// Date bounds are inclusive on both ends.
type QueryFilter struct {
	AppID     string
	EventType string
	StartDate *time.Time
	EndDate   *time.Time
}

// SummaryRow is one event-type group in the event summary.
type SummaryRow struct {
	EventType        string           `json:"event_type"`
	TotalEvents      int64            `json:"total_events"`
	UniqueUsers      int64            `json:"unique_users"`
	UniqueSessions   int64            `json:"unique_sessions"`
	DeviceBreakdown  map[string]int64 `json:"device_breakdown"`
	BrowserBreakdown map[string]int64 `json:"browser_breakdown"`
	OSBreakdown      map[string]int64 `json:"os_breakdown"`
}

// TimelineBucket is one time bucket in the event timeline.
type TimelineBucket struct {
	TimeBucket  string `json:"time_bucket"`
	EventCount  int64  `json:"event_count"`
	UniqueUsers int64  `json:"unique_users"`
}

// UserSummary aggregates one end-user's activity across the caller's apps.
type UserSummary struct {
	TotalEvents      int64      `json:"total_events"`
	UniqueEventTypes int64      `json:"unique_event_types"`
	TotalSessions    int64      `json:"total_sessions"`
	FirstSeen        *time.Time `json:"first_seen,omitempty"`
	LastSeen         *time.Time `json:"last_seen,omitempty"`
	PrimaryDevice    string     `json:"primary_device"`
	PrimaryBrowser   string     `json:"primary_browser"`
	PrimaryOS        string     `json:"primary_os"`
}

// RecentEvent is one row of a user's most recent activity.
type RecentEvent struct {
	EventType string    `json:"event_type"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Device    string    `json:"device"`
	Browser   string    `json:"browser"`
}

// UserAnalytics is the per-user analytics response.
type UserAnalytics struct {
	Summary      UserSummary   `json:"summary"`
	RecentEvents []RecentEvent `json:"recentEvents"`
}

// AppStats are the headline counters for one app.
type AppStats struct {
	TotalEvents      int64 `json:"total_events"`
	TotalUsers       int64 `json:"total_users"`
	TotalSessions    int64 `json:"total_sessions"`
	UniqueEventTypes int64 `json:"unique_event_types"`
}

// EventTypeCount is one entry of the top-event-types ranking.
type EventTypeCount struct {
	EventType string `json:"event_type"`
	Count     int64  `json:"count"`
}

// AppOverview is the per-app overview response.
type AppOverview struct {
	App       appmodel.App     `json:"app"`
	Stats     AppStats         `json:"stats"`
	TopEvents []EventTypeCount `json:"topEvents"`
}
