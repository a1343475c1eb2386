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

// APIKey is an app-scoped credential. Only the hash and display prefix
// of the secret value survive creation; rows are never deleted, only
// status-transitioned between active, revoked and expired.
type APIKey struct {
	ID         string     `json:"id"`
	AppID      string     `json:"app_id"`
	KeyHash    string     `json:"-"`
	KeyPrefix  string     `json:"key_prefix"`
	Name       string     `json:"name,omitempty"`
	Status     string     `json:"status"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	UsageCount int64      `json:"usage_count"`
	CreatedAt  time.Time  `json:"created_at"`
	AppName    string     `json:"app_name,omitempty"`
}

type CreateAPIKeyRequest struct {
	AppID         string `json:"appId"`
	Name          string `json:"name"`
	ExpiresInDays *int   `json:"expiresInDays,omitempty"`
}

// CreatedAPIKey is the creation response: the only place the raw
// secret ever appears.
type CreatedAPIKey struct {
	APIKey
	RawKey string `json:"apiKey"`
}

// ResolvedKey is the request scope produced by a successful key
// authentication: the app the key belongs to and the app's owner.
type ResolvedKey struct {
	KeyID       string
	AppID       string
	OwnerUserID string
}
