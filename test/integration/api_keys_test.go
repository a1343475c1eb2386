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

package integration

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	keymodel "github.com/wso2/identity-event-analytics-service/internal/api_keys/model"
	keyservice "github.com/wso2/identity-event-analytics-service/internal/api_keys/service"
	appmodel "github.com/wso2/identity-event-analytics-service/internal/apps/model"
	appservice "github.com/wso2/identity-event-analytics-service/internal/apps/service"
	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
	usermodel "github.com/wso2/identity-event-analytics-service/internal/users/model"
	userservice "github.com/wso2/identity-event-analytics-service/internal/users/service"
)

// newUserWithApp registers a fresh user and one app owned by it.
func newUserWithApp(t *testing.T) (userID, appID string) {
	t.Helper()

	resp, err := userservice.GetUserService().RegisterUser(usermodel.RegisterRequest{
		Email:    uuid.New().String() + "@example.com",
		Password: "integration-pass",
	})
	require.NoError(t, err)

	app, err := appservice.GetAppService().CreateApp(resp.User.ID, appmodel.CreateAppRequest{
		Name:   "Test App",
		Domain: "test.example.com",
	})
	require.NoError(t, err)

	return resp.User.ID, app.ID
}

func Test_APIKeyLifecycle(t *testing.T) {
	keySvc := keyservice.GetAPIKeyService()
	userID, appID := newUserWithApp(t)

	var rawKey, keyID string

	t.Run("Create_key", func(t *testing.T) {
		created, err := keySvc.CreateAPIKey(userID, keymodel.CreateAPIKeyRequest{
			AppID: appID,
			Name:  "primary",
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(created.RawKey, "ak_"))
		assert.Equal(t, "active", created.Status)
		assert.Equal(t, created.RawKey[:12], created.KeyPrefix)

		rawKey = created.RawKey
		keyID = created.ID
	})

	t.Run("Authenticate", func(t *testing.T) {
		resolved, err := keySvc.Authenticate(rawKey)
		require.NoError(t, err)
		assert.Equal(t, appID, resolved.AppID)
		assert.Equal(t, userID, resolved.OwnerUserID)
		assert.Equal(t, keyID, resolved.KeyID)
	})

	t.Run("Authenticate_records_usage", func(t *testing.T) {
		key, err := keySvc.GetAPIKey(keyID, userID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, key.UsageCount, int64(1))
		assert.NotNil(t, key.LastUsedAt)
	})

	t.Run("List_keys_hides_secret", func(t *testing.T) {
		keys, err := keySvc.ListAPIKeys(userID, appID)
		require.NoError(t, err)
		require.Len(t, keys, 1)
		assert.Equal(t, rawKey[:12], keys[0].KeyPrefix)
		assert.Empty(t, keys[0].KeyHash)
	})

	t.Run("Regenerate_key", func(t *testing.T) {
		regenerated, err := keySvc.RegenerateAPIKey(keyID, userID)
		require.NoError(t, err)
		assert.NotEqual(t, rawKey, regenerated.RawKey)
		assert.NotEqual(t, keyID, regenerated.ID)

		// The old key no longer authenticates.
		_, err = keySvc.Authenticate(rawKey)
		requireUnauthorized(t, err)

		// The new one does.
		resolved, err := keySvc.Authenticate(regenerated.RawKey)
		require.NoError(t, err)
		assert.Equal(t, appID, resolved.AppID)

		rawKey = regenerated.RawKey
		keyID = regenerated.ID
	})

	t.Run("Revoke_key", func(t *testing.T) {
		require.NoError(t, keySvc.RevokeAPIKey(keyID, userID))

		key, err := keySvc.GetAPIKey(keyID, userID)
		require.NoError(t, err)
		assert.Equal(t, "revoked", key.Status)

		_, err = keySvc.Authenticate(rawKey)
		requireUnauthorized(t, err)
	})
}

func Test_ExpiredKeyIsFlaggedOnUse(t *testing.T) {
	keySvc := keyservice.GetAPIKeyService()
	userID, appID := newUserWithApp(t)

	expired := -1
	created, err := keySvc.CreateAPIKey(userID, keymodel.CreateAPIKeyRequest{
		AppID:         appID,
		Name:          "already-expired",
		ExpiresInDays: &expired,
	})
	require.NoError(t, err)

	_, err = keySvc.Authenticate(created.RawKey)
	requireUnauthorized(t, err)

	// The failed authentication persists the expired status.
	key, err := keySvc.GetAPIKey(created.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "expired", key.Status)
}

func Test_KeysAreOwnerScoped(t *testing.T) {
	keySvc := keyservice.GetAPIKeyService()
	ownerID, appID := newUserWithApp(t)
	strangerID, _ := newUserWithApp(t)

	created, err := keySvc.CreateAPIKey(ownerID, keymodel.CreateAPIKeyRequest{AppID: appID})
	require.NoError(t, err)

	// A stranger cannot read, revoke, or mint keys for the app.
	_, err = keySvc.GetAPIKey(created.ID, strangerID)
	requireNotFound(t, err)

	err = keySvc.RevokeAPIKey(created.ID, strangerID)
	requireNotFound(t, err)

	_, err = keySvc.CreateAPIKey(strangerID, keymodel.CreateAPIKeyRequest{AppID: appID})
	requireNotFound(t, err)
}

func requireUnauthorized(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusUnauthorized, clientErr.StatusCode)
}

func requireNotFound(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
}
