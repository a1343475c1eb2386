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
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/wso2/identity-event-analytics-service/internal/system/cache"
	"github.com/wso2/identity-event-analytics-service/internal/system/config"
	dbprovider "github.com/wso2/identity-event-analytics-service/internal/system/database/provider"
	"github.com/wso2/identity-event-analytics-service/internal/system/log"
	"github.com/wso2/identity-event-analytics-service/test/setup"
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	conf := config.Config{
		Log: config.LogConfig{
			LogLevel: "DEBUG",
		},
		Security: config.SecurityConfig{
			JWTSecret:       "integration-jwt-secret",
			APIKeySecret:    "integration-key-secret",
			BcryptCost:      4,
			TokenLifetimeHr: 1,
		},
		Cache: config.CacheConfig{
			TTLSeconds: 3600,
		},
		RateLimit: config.RateLimitConfig{
			IngestPerMinute:    10000,
			AnalyticsPerMinute: 10000,
			AuthPerWindow:      10000,
			AuthWindowMinutes:  15,
		},
	}
	config.OverrideEASRuntime(conf)
	_ = log.Init("DEBUG")
	cache.Init(time.Duration(conf.Cache.TTLSeconds) * time.Second)

	pg, err := setup.SetupTestDB(ctx)
	if err != nil {
		fmt.Println("Failed to start test DB:", err)
		os.Exit(1)
	}

	dbprovider.OverridePool(pg.DB)

	code := m.Run()

	_ = pg.Container.Terminate(ctx)

	os.Exit(code)
}
