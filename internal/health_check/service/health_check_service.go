package service

import (
	"fmt"

	"github.com/wso2/identity-event-analytics-service/internal/system/database/provider"
)

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness() error
}

// HealthCheckService is the default implementation.
type HealthCheckService struct{}

// GetHealthCheckService returns a new instance.
func GetHealthCheckService() HealthCheckServiceInterface {
	return &HealthCheckService{}
}

// CheckReadiness verifies that the backing database is reachable.
func (h HealthCheckService) CheckReadiness() error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}

	if err := dbClient.Ping(); err != nil {
		return fmt.Errorf("database connectivity check failed: %v", err)
	}
	return nil
}
