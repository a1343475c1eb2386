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

package authn

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wso2/identity-event-analytics-service/internal/system/config"
	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
	"github.com/wso2/identity-event-analytics-service/internal/system/log"
)

// IssueToken creates a signed bearer token carrying the caller's
// identity. The analytics surface trusts this identity without
// re-verifying credentials.
func IssueToken(userID, email string) (string, error) {

	cfg := config.GetEASRuntime().Config.Security
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"iat":    now.Unix(),
		"exp":    now.Add(time.Duration(cfg.TokenLifetimeHr) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", errors2.NewServerError(errors2.ISSUE_TOKEN, err)
	}
	return signed, nil
}

// ValidateRequest validates the Authorization: Bearer token on the
// request and returns the authenticated user id.
func ValidateRequest(r *http.Request) (string, error) {

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", unauthorizedError("Missing or invalid Authorization header")
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

	return validateToken(tokenString)
}

func validateToken(tokenString string) (string, error) {

	logger := log.GetLogger()
	cfg := config.GetEASRuntime().Config.Security

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		logger.Debug("Bearer token validation failed.", log.Error(err))
		return "", unauthorizedError("Invalid or expired token")
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		logger.Debug("Token does not carry a userId claim.")
		return "", unauthorizedError("Invalid token claims")
	}

	return userID, nil
}

func unauthorizedError(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UNAUTHORIZED.Code,
		Message:     errors2.UNAUTHORIZED.Message,
		Description: description,
	}, http.StatusUnauthorized)
}
