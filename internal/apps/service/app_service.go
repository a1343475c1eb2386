package service

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wso2/identity-event-analytics-service/internal/apps/model"
	"github.com/wso2/identity-event-analytics-service/internal/apps/store"
	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
)

type AppServiceInterface interface {
	CreateApp(userID string, request model.CreateAppRequest) (*model.App, error)
	ListApps(userID string) ([]model.App, error)
	GetApp(appID, userID string) (*model.App, error)
}

// AppService is the default implementation of the AppServiceInterface.
type AppService struct{}

// GetAppService creates a new instance of AppService.
func GetAppService() AppServiceInterface {

	return &AppService{}
}

// CreateApp registers a new tenant app for the caller.
func (as *AppService) CreateApp(userID string, request model.CreateAppRequest) (*model.App, error) {

	if request.Name == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_REQUEST.Code,
			Message:     errors2.INVALID_REQUEST.Message,
			Description: "App name is required.",
		}, http.StatusBadRequest)
	}

	app := &model.App{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        request.Name,
		Description: request.Description,
		Domain:      request.Domain,
		CreatedAt:   time.Now().UTC(),
	}
	if err := store.InsertApp(app); err != nil {
		return nil, errors2.NewServerError(errors2.ADD_APP, err)
	}
	return app, nil
}

// ListApps returns the caller's apps.
func (as *AppService) ListApps(userID string) ([]model.App, error) {

	apps, err := store.GetAppsByUser(userID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.FETCH_APPS, err)
	}
	return apps, nil
}

// GetApp returns one owned app, NotFound for missing or foreign apps.
func (as *AppService) GetApp(appID, userID string) (*model.App, error) {

	app, err := store.GetAppByIDAndUser(appID, userID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.FETCH_APPS, err)
	}
	if app == nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.APP_NOT_FOUND.Code,
			Message:     errors2.APP_NOT_FOUND.Message,
			Description: "App not found.",
		}, http.StatusNotFound)
	}
	return app, nil
}
