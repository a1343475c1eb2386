package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wso2/identity-event-analytics-service/internal/api_keys/model"
	"github.com/wso2/identity-event-analytics-service/internal/api_keys/provider"
	sysctx "github.com/wso2/identity-event-analytics-service/internal/system/context"
	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
	"github.com/wso2/identity-event-analytics-service/internal/system/utils"
)

const keySafetyNote = "Store this API key securely. It will not be shown again."

type APIKeyHandler struct{}

func NewAPIKeyHandler() *APIKeyHandler {
	return &APIKeyHandler{}
}

// CreateAPIKey issues a new key for an owned app. The response is the
// only place the raw key ever appears.
func (kh *APIKeyHandler) CreateAPIKey(w http.ResponseWriter, r *http.Request) {

	var request model.CreateAPIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_REQUEST.Code,
			Message:     errors2.INVALID_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "api key"),
		}, http.StatusBadRequest))
		return
	}

	apiKeyService := provider.NewAPIKeysProvider().GetAPIKeyService()
	created, err := apiKeyService.CreateAPIKey(sysctx.GetUserID(r.Context()), request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, created, keySafetyNote)
}

// ListAPIKeys lists the caller's keys, optionally filtered by app.
func (kh *APIKeyHandler) ListAPIKeys(w http.ResponseWriter, r *http.Request) {

	apiKeyService := provider.NewAPIKeysProvider().GetAPIKeyService()
	keys, err := apiKeyService.ListAPIKeys(sysctx.GetUserID(r.Context()), r.URL.Query().Get("appId"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, keys, "")
}

// GetAPIKey fetches one owned key.
func (kh *APIKeyHandler) GetAPIKey(w http.ResponseWriter, r *http.Request) {

	apiKeyService := provider.NewAPIKeysProvider().GetAPIKeyService()
	key, err := apiKeyService.GetAPIKey(r.PathValue("keyId"), sysctx.GetUserID(r.Context()))
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, key, "")
}

// RegenerateAPIKey revokes the key and returns a fresh replacement.
func (kh *APIKeyHandler) RegenerateAPIKey(w http.ResponseWriter, r *http.Request) {

	apiKeyService := provider.NewAPIKeysProvider().GetAPIKeyService()
	created, err := apiKeyService.RegenerateAPIKey(r.PathValue("keyId"), sysctx.GetUserID(r.Context()))
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, created, keySafetyNote)
}

// RevokeAPIKey disables the key.
func (kh *APIKeyHandler) RevokeAPIKey(w http.ResponseWriter, r *http.Request) {

	apiKeyService := provider.NewAPIKeysProvider().GetAPIKeyService()
	if err := apiKeyService.RevokeAPIKey(r.PathValue("keyId"), sysctx.GetUserID(r.Context())); err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil, "API key revoked successfully")
}
