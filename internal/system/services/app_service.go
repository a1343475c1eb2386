package services

import (
	"net/http"

	"github.com/wso2/identity-event-analytics-service/internal/apps/handler"
	"github.com/wso2/identity-event-analytics-service/internal/system/constants"
)

// AppService exposes app registration and lookup for authenticated users.
type AppService struct {
	appHandler *handler.AppHandler
}

// NewAppService creates a new AppService instance and registers its routes.
func NewAppService(mux *http.ServeMux, apiBasePath string) *AppService {

	instance := &AppService{
		appHandler: handler.NewAppHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

// RegisterRoutes registers the app management routes.
func (s *AppService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	basePath := apiBasePath + "/" + constants.AppsApiPath

	mux.HandleFunc("POST "+basePath, authenticated(nil, s.appHandler.CreateApp))
	mux.HandleFunc("GET "+basePath, authenticated(nil, s.appHandler.ListApps))
	mux.HandleFunc("GET "+basePath+"/{appId}", authenticated(nil, s.appHandler.GetApp))
}
