package provider

import (
	"github.com/wso2/identity-event-analytics-service/internal/apps/service"
)

// AppsProviderInterface defines the interface for the apps provider.
type AppsProviderInterface interface {
	GetAppService() service.AppServiceInterface
}

// AppsProvider is the default implementation of the AppsProviderInterface.
type AppsProvider struct{}

// NewAppsProvider creates a new instance of AppsProvider.
func NewAppsProvider() AppsProviderInterface {

	return &AppsProvider{}
}

// GetAppService returns the app service instance.
func (ap *AppsProvider) GetAppService() service.AppServiceInterface {

	return service.GetAppService()
}
