package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wso2/identity-event-analytics-service/internal/apps/model"
	"github.com/wso2/identity-event-analytics-service/internal/apps/provider"
	sysctx "github.com/wso2/identity-event-analytics-service/internal/system/context"
	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
	"github.com/wso2/identity-event-analytics-service/internal/system/utils"
)

type AppHandler struct{}

func NewAppHandler() *AppHandler {
	return &AppHandler{}
}

// CreateApp handles app registration for the authenticated user.
func (ah *AppHandler) CreateApp(w http.ResponseWriter, r *http.Request) {

	var request model.CreateAppRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_REQUEST.Code,
			Message:     errors2.INVALID_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "app"),
		}, http.StatusBadRequest))
		return
	}

	appService := provider.NewAppsProvider().GetAppService()
	app, err := appService.CreateApp(sysctx.GetUserID(r.Context()), request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, app, "")
}

// ListApps returns the authenticated user's apps.
func (ah *AppHandler) ListApps(w http.ResponseWriter, r *http.Request) {

	appService := provider.NewAppsProvider().GetAppService()
	apps, err := appService.ListApps(sysctx.GetUserID(r.Context()))
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, apps, "")
}

// GetApp returns one owned app.
func (ah *AppHandler) GetApp(w http.ResponseWriter, r *http.Request) {

	appService := provider.NewAppsProvider().GetAppService()
	app, err := appService.GetApp(r.PathValue("appId"), sysctx.GetUserID(r.Context()))
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, app, "")
}
