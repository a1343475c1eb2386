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

import "time"

// Event is one immutable tracked user action. Rows are appended by the
// ingestion pipeline and never mutated or deleted afterwards.
type Event struct {
	ID           string                 `json:"id"`
	AppID        string                 `json:"app_id"`
	EventType    string                 `json:"event_type"`
	UserID       string                 `json:"user_id,omitempty"`
	SessionID    string                 `json:"session_id,omitempty"`
	URL          string                 `json:"url,omitempty"`
	Referrer     string                 `json:"referrer,omitempty"`
	IPAddress    string                 `json:"ip_address,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty"`
	Browser      string                 `json:"browser"`
	OS           string                 `json:"os"`
	Device       string                 `json:"device"`
	ScreenWidth  *int                   `json:"screen_width,omitempty"`
	ScreenHeight *int                   `json:"screen_height,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

// TrackRequest is one incoming event payload.
type TrackRequest struct {
	EventType    string                 `json:"eventType"`
	UserID       string                 `json:"userId"`
	SessionID    string                 `json:"sessionId"`
	URL          string                 `json:"url"`
	Referrer     string                 `json:"referrer"`
	ScreenWidth  *int                   `json:"screenWidth"`
	ScreenHeight *int                   `json:"screenHeight"`
	Metadata     map[string]interface{} `json:"metadata"`
}

// BatchTrackRequest carries up to MaxBatchSize event payloads.
type BatchTrackRequest struct {
	Events []TrackRequest `json:"events"`
}

// ClientMetadata is the per-request client context shared by every
// event in a batch: one IP and one user-agent per request.
type ClientMetadata struct {
	IPAddress string
	UserAgent string
	Browser   string
	OS        string
	Device    string
}
