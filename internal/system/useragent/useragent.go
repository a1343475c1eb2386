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

package useragent

import (
	"strings"

	ua "github.com/mileusna/useragent"

	"github.com/wso2/identity-event-analytics-service/internal/system/constants"
)

// ClientInfo is the best-effort browser/OS/device classification
// derived from a raw user-agent string.
type ClientInfo struct {
	Browser string
	OS      string
	Device  string
}

// Parse classifies a raw user-agent string. Every field falls back to
// "Unknown" when the string is absent or carries no usable signal.
func Parse(userAgent string) ClientInfo {

	info := ClientInfo{
		Browser: constants.UnknownClient,
		OS:      constants.UnknownClient,
		Device:  constants.UnknownClient,
	}
	if strings.TrimSpace(userAgent) == "" {
		return info
	}

	parsed := ua.Parse(userAgent)

	if parsed.Name != "" {
		info.Browser = strings.TrimSpace(parsed.Name + " " + majorVersion(parsed.Version))
	}
	if parsed.OS != "" {
		info.OS = strings.TrimSpace(parsed.OS + " " + majorVersion(parsed.OSVersion))
	}

	switch {
	case parsed.Device != "":
		info.Device = parsed.Device
	case parsed.Mobile:
		info.Device = "Mobile"
	case parsed.Tablet:
		info.Device = "Tablet"
	case parsed.Desktop:
		info.Device = "Desktop"
	}

	return info
}

// majorVersion trims a dotted version down to its leading component.
func majorVersion(version string) string {
	if i := strings.Index(version, "."); i >= 0 {
		return version[:i]
	}
	return version
}
