package services

import (
	"net/http"

	"github.com/wso2/identity-event-analytics-service/internal/api_keys/handler"
	"github.com/wso2/identity-event-analytics-service/internal/system/constants"
)

// APIKeyService exposes API key management for authenticated users.
type APIKeyService struct {
	apiKeyHandler *handler.APIKeyHandler
}

// NewAPIKeyService creates a new APIKeyService instance and registers its routes.
func NewAPIKeyService(mux *http.ServeMux, apiBasePath string) *APIKeyService {

	instance := &APIKeyService{
		apiKeyHandler: handler.NewAPIKeyHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

// RegisterRoutes registers the API key management routes.
func (s *APIKeyService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	basePath := apiBasePath + "/" + constants.ApiKeysApiPath

	mux.HandleFunc("POST "+basePath, authenticated(nil, s.apiKeyHandler.CreateAPIKey))
	mux.HandleFunc("GET "+basePath, authenticated(nil, s.apiKeyHandler.ListAPIKeys))
	mux.HandleFunc("GET "+basePath+"/{keyId}", authenticated(nil, s.apiKeyHandler.GetAPIKey))
	mux.HandleFunc("POST "+basePath+"/{keyId}/regenerate", authenticated(nil, s.apiKeyHandler.RegenerateAPIKey))
	mux.HandleFunc("DELETE "+basePath+"/{keyId}", authenticated(nil, s.apiKeyHandler.RevokeAPIKey))
}
