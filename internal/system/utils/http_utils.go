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

package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	customerrors "github.com/wso2/identity-event-analytics-service/internal/system/errors"
	"github.com/wso2/identity-event-analytics-service/internal/system/log"
)

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Cached  *bool       `json:"cached,omitempty"`
}

// WriteSuccess writes a success envelope with the given payload.
func WriteSuccess(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	writeEnvelope(w, statusCode, Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// WriteCached writes a success envelope carrying a cached flag, used
// by the analytics endpoints.
func WriteCached(w http.ResponseWriter, data interface{}, cached bool) {
	writeEnvelope(w, http.StatusOK, Envelope{
		Success: true,
		Data:    data,
		Cached:  &cached,
	})
}

// HandleError writes an error envelope for the given error. Client
// errors keep their status and description; anything else becomes a
// generic 500 so internal detail never leaks to the caller.
func HandleError(w http.ResponseWriter, err error) {

	var clientError *customerrors.ClientError
	if errors.As(err, &clientError) {
		writeEnvelope(w, clientError.StatusCode, Envelope{
			Success: false,
			Error:   clientErrorText(clientError),
		})
		return
	}

	logger := log.GetLogger()
	var serverError *customerrors.ServerError
	if errors.As(err, &serverError) {
		logger.Error(serverError.Message,
			log.String("code", serverError.Code), log.Any("cause", serverError.Err))
	} else {
		logger.Error("Unexpected error while handling request.", log.Error(err))
	}
	writeEnvelope(w, http.StatusInternalServerError, Envelope{
		Success: false,
		Error:   "Internal server error",
	})
}

func clientErrorText(clientError *customerrors.ClientError) string {
	if clientError.Description != "" {
		return clientError.Description
	}
	return clientError.Message
}

func writeEnvelope(w http.ResponseWriter, statusCode int, envelope Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(envelope)
}
