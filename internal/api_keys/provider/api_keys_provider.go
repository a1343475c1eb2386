package provider

import (
	"github.com/wso2/identity-event-analytics-service/internal/api_keys/service"
)

// APIKeysProviderInterface defines the interface for the API keys provider.
type APIKeysProviderInterface interface {
	GetAPIKeyService() service.APIKeyServiceInterface
}

// APIKeysProvider is the default implementation of the APIKeysProviderInterface.
type APIKeysProvider struct{}

// NewAPIKeysProvider creates a new instance of APIKeysProvider.
func NewAPIKeysProvider() APIKeysProviderInterface {

	return &APIKeysProvider{}
}

// GetAPIKeyService returns the API key service instance.
func (kp *APIKeysProvider) GetAPIKeyService() service.APIKeyServiceInterface {

	return service.GetAPIKeyService()
}
