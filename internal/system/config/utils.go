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

package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

// LoadConfig reads the deployment descriptor, expands environment
// variable references, and unmarshals it into a Config.
func LoadConfig(easHome, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(easHome, filePath))
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(file))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Security.BcryptCost == 0 {
		cfg.Security.BcryptCost = 10
	}
	if cfg.Security.TokenLifetimeHr == 0 {
		cfg.Security.TokenLifetimeHr = 24 * 7
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 3600
	}
	if cfg.RateLimit.IngestPerMinute == 0 {
		cfg.RateLimit.IngestPerMinute = 1000
	}
	if cfg.RateLimit.AnalyticsPerMinute == 0 {
		cfg.RateLimit.AnalyticsPerMinute = 100
	}
	if cfg.RateLimit.AuthPerWindow == 0 {
		cfg.RateLimit.AuthPerWindow = 10
	}
	if cfg.RateLimit.AuthWindowMinutes == 0 {
		cfg.RateLimit.AuthWindowMinutes = 15
	}
}
