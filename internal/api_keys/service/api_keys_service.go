package service

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wso2/identity-event-analytics-service/internal/api_keys/model"
	"github.com/wso2/identity-event-analytics-service/internal/api_keys/store"
	appstore "github.com/wso2/identity-event-analytics-service/internal/apps/store"
	"github.com/wso2/identity-event-analytics-service/internal/system/constants"
	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
	"github.com/wso2/identity-event-analytics-service/internal/system/log"
	"github.com/wso2/identity-event-analytics-service/internal/system/security"
)

type APIKeyServiceInterface interface {
	CreateAPIKey(userID string, request model.CreateAPIKeyRequest) (*model.CreatedAPIKey, error)
	ListAPIKeys(userID, appID string) ([]model.APIKey, error)
	GetAPIKey(keyID, userID string) (*model.APIKey, error)
	RegenerateAPIKey(keyID, userID string) (*model.CreatedAPIKey, error)
	RevokeAPIKey(keyID, userID string) error
	Authenticate(rawKey string) (*model.ResolvedKey, error)
}

// APIKeyService is the default implementation of APIKeyServiceInterface.
type APIKeyService struct{}

// GetAPIKeyService creates a new instance of APIKeyService.
func GetAPIKeyService() APIKeyServiceInterface {
	return &APIKeyService{}
}

// CreateAPIKey generates a key for an owned app and stores its hash.
// The raw value is part of the response and is never retrievable again.
func (s *APIKeyService) CreateAPIKey(userID string, request model.CreateAPIKeyRequest) (*model.CreatedAPIKey, error) {

	if request.AppID == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_REQUEST.Code,
			Message:     errors2.INVALID_REQUEST.Message,
			Description: "App ID is required.",
		}, http.StatusBadRequest)
	}

	app, err := appstore.GetAppByIDAndUser(request.AppID, userID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.FETCH_APPS, err)
	}
	if app == nil {
		return nil, appNotFoundError()
	}

	var expiresAt *time.Time
	if request.ExpiresInDays != nil {
		expiry := time.Now().UTC().AddDate(0, 0, *request.ExpiresInDays)
		expiresAt = &expiry
	}

	return s.issueKey(request.AppID, request.Name, expiresAt)
}

// ListAPIKeys lists the caller's keys. The raw secret and its hash are
// never part of a listing.
func (s *APIKeyService) ListAPIKeys(userID, appID string) ([]model.APIKey, error) {

	keys, err := store.GetKeysByUser(userID, appID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.FETCH_API_KEYS, err)
	}
	return keys, nil
}

// GetAPIKey retrieves one owned key.
func (s *APIKeyService) GetAPIKey(keyID, userID string) (*model.APIKey, error) {

	key, err := store.GetKeyByIDAndUser(keyID, userID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.FETCH_API_KEYS, err)
	}
	if key == nil {
		return nil, keyNotFoundError()
	}
	return key, nil
}

// RegenerateAPIKey revokes the existing key and issues a replacement
// with the same app, name and expiry.
func (s *APIKeyService) RegenerateAPIKey(keyID, userID string) (*model.CreatedAPIKey, error) {

	existing, err := store.GetKeyByIDAndUser(keyID, userID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.FETCH_API_KEYS, err)
	}
	if existing == nil {
		return nil, keyNotFoundError()
	}

	if err := store.UpdateStatus(keyID, constants.KeyStateRevoked); err != nil {
		return nil, errors2.NewServerError(errors2.UPDATE_API_KEY, err)
	}

	return s.issueKey(existing.AppID, existing.Name, existing.ExpiresAt)
}

// RevokeAPIKey transitions an owned key to revoked.
func (s *APIKeyService) RevokeAPIKey(keyID, userID string) error {

	updated, err := store.UpdateStatusOwned(keyID, userID, constants.KeyStateRevoked)
	if err != nil {
		return errors2.NewServerError(errors2.UPDATE_API_KEY, err)
	}
	if !updated {
		return keyNotFoundError()
	}
	return nil
}

// Authenticate is the ingestion gate. It hashes the presented secret,
// resolves an active key, expires keys past their expiry on first
// sight, and stamps usage on success.
func (s *APIKeyService) Authenticate(rawKey string) (*model.ResolvedKey, error) {

	if rawKey == "" {
		return nil, unauthorizedError("API key required")
	}

	keyHash := security.HashAPIKey(rawKey)
	key, resolved, err := store.GetActiveKeyByHash(keyHash)
	if err != nil {
		return nil, errors2.NewServerError(errors2.FETCH_API_KEYS, err)
	}
	if key == nil {
		return nil, unauthorizedError("Invalid or inactive API key")
	}

	if key.ExpiresAt != nil && key.ExpiresAt.Before(time.Now()) {
		if err := store.UpdateStatus(key.ID, constants.KeyStateExpired); err != nil {
			log.GetLogger().Warn("Failed to mark API key expired.", log.String("key_id", key.ID), log.Error(err))
		}
		return nil, unauthorizedError("API key has expired")
	}

	if err := store.TouchUsage(key.ID); err != nil {
		// Usage accounting must not block a valid request.
		log.GetLogger().Warn("Failed to record API key usage.", log.String("key_id", key.ID), log.Error(err))
	}

	return resolved, nil
}

func (s *APIKeyService) issueKey(appID, name string, expiresAt *time.Time) (*model.CreatedAPIKey, error) {

	rawKey, err := security.GenerateAPIKey()
	if err != nil {
		return nil, errors2.NewServerError(errors2.ADD_API_KEY, err)
	}

	key := &model.APIKey{
		ID:        uuid.New().String(),
		AppID:     appID,
		KeyHash:   security.HashAPIKey(rawKey),
		KeyPrefix: security.KeyDisplayPrefix(rawKey),
		Name:      name,
		Status:    constants.KeyStateActive,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.InsertAPIKey(key); err != nil {
		return nil, errors2.NewServerError(errors2.ADD_API_KEY, err)
	}

	return &model.CreatedAPIKey{APIKey: *key, RawKey: rawKey}, nil
}

func unauthorizedError(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UNAUTHORIZED.Code,
		Message:     errors2.UNAUTHORIZED.Message,
		Description: description,
	}, http.StatusUnauthorized)
}

func keyNotFoundError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.API_KEY_NOT_FOUND.Code,
		Message:     errors2.API_KEY_NOT_FOUND.Message,
		Description: "API key not found.",
	}, http.StatusNotFound)
}

func appNotFoundError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.APP_NOT_FOUND.Code,
		Message:     errors2.APP_NOT_FOUND.Message,
		Description: "App not found or unauthorized.",
	}, http.StatusNotFound)
}
