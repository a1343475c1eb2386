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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
	"github.com/wso2/identity-event-analytics-service/internal/users/model"
	"github.com/wso2/identity-event-analytics-service/internal/users/service"
)

func Test_Users(t *testing.T) {
	userSvc := service.GetUserService()
	email := uuid.New().String() + "@example.com"

	t.Run("Register_user", func(t *testing.T) {
		resp, err := userSvc.RegisterUser(model.RegisterRequest{
			Email:    email,
			Name:     "Integration Tester",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.NotEmpty(t, resp.User.ID)
		assert.Equal(t, email, resp.User.Email)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("Register_duplicate_email", func(t *testing.T) {
		_, err := userSvc.RegisterUser(model.RegisterRequest{
			Email:    email,
			Password: "another-pass",
		})
		require.Error(t, err)

		var clientErr *errors2.ClientError
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, http.StatusConflict, clientErr.StatusCode)
	})

	t.Run("Login", func(t *testing.T) {
		resp, err := userSvc.Login(model.LoginRequest{
			Email:    email,
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		assert.Equal(t, email, resp.User.Email)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("Login_wrong_password", func(t *testing.T) {
		_, err := userSvc.Login(model.LoginRequest{
			Email:    email,
			Password: "wrong",
		})
		require.Error(t, err)

		var clientErr *errors2.ClientError
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, http.StatusUnauthorized, clientErr.StatusCode)
	})

	t.Run("Login_unknown_user", func(t *testing.T) {
		_, err := userSvc.Login(model.LoginRequest{
			Email:    "nobody-" + email,
			Password: "whatever",
		})
		require.Error(t, err)

		var clientErr *errors2.ClientError
		require.ErrorAs(t, err, &clientErr)
		assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
	})
}
