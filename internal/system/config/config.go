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

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type DataSourceConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// SecurityConfig carries the signing and hashing secrets. Values are
// expected to be injected through environment expansion in the
// deployment descriptor, never committed in plain text.
type SecurityConfig struct {
	JWTSecret       string `yaml:"jwt_secret"`
	APIKeySecret    string `yaml:"api_key_secret"`
	BcryptCost      int    `yaml:"bcrypt_cost"`
	TokenLifetimeHr int    `yaml:"token_lifetime_hours"`
}

type CacheConfig struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

type RateLimitConfig struct {
	IngestPerMinute    int `yaml:"ingest_per_minute"`
	AnalyticsPerMinute int `yaml:"analytics_per_minute"`
	AuthPerWindow      int `yaml:"auth_per_window"`
	AuthWindowMinutes  int `yaml:"auth_window_minutes"`
}

type Config struct {
	Addr       AddrConfig       `yaml:"addr"`
	Log        LogConfig        `yaml:"log"`
	DataSource DataSourceConfig `yaml:"datasource"`
	Security   SecurityConfig   `yaml:"security"`
	Cache      CacheConfig      `yaml:"cache"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}
