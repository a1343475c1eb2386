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

import "sync"

// EASRuntime holds the runtime configuration for the analytics server.
type EASRuntime struct {
	EASHome string `yaml:"eas_home"`
	Config  Config `yaml:"config"`
}

var (
	runtimeConfig *EASRuntime
	once          sync.Once
)

// InitializeEASRuntime initializes the EASRuntime configuration.
func InitializeEASRuntime(easHome string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &EASRuntime{
			EASHome: easHome,
			Config:  *config,
		}
	})

	return nil
}

// GetEASRuntime returns the EASRuntime configuration.
func GetEASRuntime() *EASRuntime {

	if runtimeConfig == nil {
		panic("EASRuntime is not initialized")
	}
	return runtimeConfig
}

// OverrideEASRuntime replaces the runtime configuration. Intended for
// test setup only.
func OverrideEASRuntime(conf Config) {
	runtimeConfig = &EASRuntime{
		Config: conf,
	}
}
