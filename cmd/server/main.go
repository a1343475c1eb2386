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

package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/wso2/identity-event-analytics-service/internal/system/cache"
	"github.com/wso2/identity-event-analytics-service/internal/system/config"
	"github.com/wso2/identity-event-analytics-service/internal/system/constants"
	sysctx "github.com/wso2/identity-event-analytics-service/internal/system/context"
	dbprovider "github.com/wso2/identity-event-analytics-service/internal/system/database/provider"
	"github.com/wso2/identity-event-analytics-service/internal/system/log"
	"github.com/wso2/identity-event-analytics-service/internal/system/managers"
)

const configFile = "/repository/conf/deployment.yaml"

func main() {

	easHome := getEASHome()

	envFiles, _ := filepath.Glob(filepath.Join(easHome, "config", "*.env"))
	_ = godotenv.Load(envFiles...)

	easConfig, err := config.LoadConfig(easHome, configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	if err := config.InitializeEASRuntime(easHome, easConfig); err != nil {
		stdlog.Fatalf("Failed to initialize runtime configuration: %v", err)
	}

	if err := log.Init(easConfig.Log.LogLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := log.GetLogger()

	cache.Init(time.Duration(easConfig.Cache.TTLSeconds) * time.Second)

	// Open the pool eagerly so a bad datasource fails at startup, not
	// on the first request.
	if _, err := dbprovider.NewDBProvider().GetDBClient(); err != nil {
		logger.Fatal("Failed to initialize database connection.", log.Error(err))
	}

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		logger.Fatal("Failed to register the services.", log.Error(err))
	}

	serverAddr := fmt.Sprintf("%s:%d", easConfig.Addr.Host, easConfig.Addr.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: enableCORS(withTracing(mux)),
	}

	go func() {
		logger.Info("Event analytics service starting.", log.String("address", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to serve requests.", log.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down.")
	shutdownStart := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed.", log.Error(err))
	}
	if err := dbprovider.Shutdown(); err != nil {
		logger.Error("Failed to close database pool.", log.Error(err))
	}
	logger.Info("Shutdown complete.", log.Duration("elapsed", time.Since(shutdownStart)))
}

// getEASHome resolves the deployment root. Defaults to the working
// directory when EAS_HOME is not set.
func getEASHome() string {

	if home := os.Getenv("EAS_HOME"); home != "" {
		return home
	}
	wd, err := os.Getwd()
	if err != nil {
		stdlog.Fatalf("Failed to resolve working directory: %v", err)
	}
	return wd
}

// withTracing stamps every request with a trace id, echoed back in the
// X-Trace-Id response header for correlation.
func withTracing(next http.Handler) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := sysctx.GetOrGenerateTraceID(r.Context())
		w.Header().Set("X-Trace-Id", traceID)
		next.ServeHTTP(w, r.WithContext(sysctx.WithTraceID(r.Context(), traceID)))
	})
}

func enableCORS(next http.Handler) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, "+constants.APIKeyHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
