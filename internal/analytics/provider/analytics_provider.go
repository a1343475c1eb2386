package provider

import (
	"github.com/wso2/identity-event-analytics-service/internal/analytics/service"
)

// AnalyticsProviderInterface defines the interface for the analytics provider.
type AnalyticsProviderInterface interface {
	GetAnalyticsService() service.AnalyticsServiceInterface
}

// AnalyticsProvider is the default implementation of the AnalyticsProviderInterface.
type AnalyticsProvider struct{}

// NewAnalyticsProvider creates a new instance of AnalyticsProvider.
func NewAnalyticsProvider() AnalyticsProviderInterface {

	return &AnalyticsProvider{}
}

// GetAnalyticsService returns the analytics service instance.
func (ap *AnalyticsProvider) GetAnalyticsService() service.AnalyticsServiceInterface {

	return service.GetAnalyticsService()
}
