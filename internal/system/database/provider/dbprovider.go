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

package provider

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/wso2/identity-event-analytics-service/internal/system/config"
	"github.com/wso2/identity-event-analytics-service/internal/system/database/client"
	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
)

// DBConfig represents the local database configuration.
type DBConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient() (client.DBClientInterface, error)
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct{}

var (
	pool     *sql.DB
	poolOnce sync.Once
	poolErr  error
)

// NewDBProvider creates a new instance of DBProvider.
func NewDBProvider() DBProviderInterface {

	return &DBProvider{}
}

// GetDBClient returns a database client over the process-wide pool.
// The pool is opened once at first use and reused by every request.
func (d *DBProvider) GetDBClient() (client.DBClientInterface, error) {

	poolOnce.Do(func() {
		runtimeConfig := config.GetEASRuntime().Config
		dbConfig := getDBConfig(runtimeConfig)

		db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
		if err != nil {
			poolErr = fmt.Errorf("failed to connect to database: %w", err)
			return
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)

		if err := db.Ping(); err != nil {
			poolErr = fmt.Errorf("failed to ping database: %w", err)
			return
		}
		pool = db
	})
	if poolErr != nil {
		return nil, errors2.NewServerError(errors2.DB_CLIENT_INIT, poolErr)
	}

	return client.NewDBClient(pool), nil
}

// OverridePool injects an externally managed pool. Intended for test
// setup against a container-backed database.
func OverridePool(db *sql.DB) {
	poolOnce.Do(func() {})
	poolErr = nil
	pool = db
}

// Shutdown closes the shared pool. Called once at process teardown.
func Shutdown() error {
	if pool == nil {
		return nil
	}
	return pool.Close()
}

// getDBConfig returns the database configuration based on the provided data source.
func getDBConfig(dataSource config.Config) DBConfig {

	var dbConfig DBConfig

	dbConfig.driverName = "postgres"
	dbConfig.dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dataSource.DataSource.Hostname, dataSource.DataSource.Port, dataSource.DataSource.Username,
		dataSource.DataSource.Password, dataSource.DataSource.Name, dataSource.DataSource.SSLMode)

	return dbConfig
}
