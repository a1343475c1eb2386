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

package errors

const errorPrefix = "EAS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Unable to initialize database client.",
	}

	ADD_EVENT = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while persisting event.",
	}

	ADD_EVENT_BATCH = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while persisting event batch.",
	}

	FETCH_ANALYTICS = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while computing analytics.",
	}

	ADD_API_KEY = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while creating API key.",
	}

	FETCH_API_KEYS = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while fetching API key(s).",
	}

	UPDATE_API_KEY = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while updating API key state.",
	}

	ADD_APP = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while creating app.",
	}

	FETCH_APPS = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while fetching app(s).",
	}

	ADD_USER = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while creating user.",
	}

	FETCH_USER = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while fetching user.",
	}

	ISSUE_TOKEN = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Error while issuing access token.",
	}

	HASH_PASSWORD = ErrorMessage{
		Code:    errorPrefix + "15013",
		Message: "Error while hashing password.",
	}

	// Client error codes

	INVALID_REQUEST = ErrorMessage{
		Code:    errorPrefix + "60001",
		Message: "Invalid request.",
	}

	INVALID_EVENT = ErrorMessage{
		Code:    errorPrefix + "60002",
		Message: "Invalid event payload.",
	}

	UNAUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "60003",
		Message:     "Unauthorized request.",
		Description: "Missing or invalid credentials.",
	}

	APP_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "60004",
		Message: "App not found.",
	}

	API_KEY_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "60005",
		Message: "API key not found.",
	}

	USER_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "60006",
		Message: "User not found.",
	}

	DUPLICATE_USER = ErrorMessage{
		Code:    errorPrefix + "60007",
		Message: "Email already exists.",
	}

	RATE_LIMIT_EXCEEDED = ErrorMessage{
		Code:        errorPrefix + "60008",
		Message:     "Too many requests.",
		Description: "Request rate limit exceeded. Try again later.",
	}
)
