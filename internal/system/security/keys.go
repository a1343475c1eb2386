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

package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"

	"github.com/wso2/identity-event-analytics-service/internal/system/config"
	"github.com/wso2/identity-event-analytics-service/internal/system/constants"
)

const apiKeyPrefix = "ak_"

// GenerateAPIKey returns a new raw API key. The raw value is shown to
// the caller exactly once; only its hash and display prefix persist.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return apiKeyPrefix + hex.EncodeToString(buf), nil
}

// HashAPIKey computes the HMAC-SHA256 of the raw key under the
// configured server secret. The same key always hashes to the same
// value, which is what makes the hash usable as a lookup column.
func HashAPIKey(rawKey string) string {
	secret := config.GetEASRuntime().Config.Security.APIKeySecret
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(rawKey))
	return hex.EncodeToString(mac.Sum(nil))
}

// KeyDisplayPrefix returns the short non-secret prefix kept for
// listing keys after the raw value is discarded.
func KeyDisplayPrefix(rawKey string) string {
	if len(rawKey) < constants.APIKeyPrefixLength {
		return rawKey
	}
	return rawKey[:constants.APIKeyPrefixLength]
}

// HashPassword hashes a user password with bcrypt at the configured cost.
func HashPassword(password string) (string, error) {
	cost := config.GetEASRuntime().Config.Security.BcryptCost
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword reports whether the password matches the stored hash.
func ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
