package handler

import (
	"encoding/json"
	"net/http"

	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
	"github.com/wso2/identity-event-analytics-service/internal/system/utils"
	"github.com/wso2/identity-event-analytics-service/internal/users/model"
	"github.com/wso2/identity-event-analytics-service/internal/users/provider"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Register handles user self-registration.
func (uh *UserHandler) Register(w http.ResponseWriter, r *http.Request) {

	var request model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_REQUEST.Code,
			Message:     errors2.INVALID_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "register"),
		}, http.StatusBadRequest))
		return
	}

	userService := provider.NewUsersProvider().GetUserService()
	response, err := userService.RegisterUser(request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, response, "")
}

// Login handles credential checks and token issuance.
func (uh *UserHandler) Login(w http.ResponseWriter, r *http.Request) {

	var request model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_REQUEST.Code,
			Message:     errors2.INVALID_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "login"),
		}, http.StatusBadRequest))
		return
	}

	userService := provider.NewUsersProvider().GetUserService()
	response, err := userService.Login(request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, response, "")
}
