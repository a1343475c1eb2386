package service

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wso2/identity-event-analytics-service/internal/system/authn"
	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
	"github.com/wso2/identity-event-analytics-service/internal/system/log"
	"github.com/wso2/identity-event-analytics-service/internal/system/security"
	"github.com/wso2/identity-event-analytics-service/internal/system/utils"
	"github.com/wso2/identity-event-analytics-service/internal/users/model"
	"github.com/wso2/identity-event-analytics-service/internal/users/store"
)

type UserServiceInterface interface {
	RegisterUser(request model.RegisterRequest) (*model.AuthResponse, error)
	Login(request model.LoginRequest) (*model.AuthResponse, error)
}

// UserService is the default implementation of the UserServiceInterface.
type UserService struct{}

// GetUserService creates a new instance of UserService.
func GetUserService() UserServiceInterface {

	return &UserService{}
}

// RegisterUser creates a user and issues a bearer token for it.
func (us *UserService) RegisterUser(request model.RegisterRequest) (*model.AuthResponse, error) {

	if request.Email == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_REQUEST.Code,
			Message:     errors2.INVALID_REQUEST.Message,
			Description: "Email is required.",
		}, http.StatusBadRequest)
	}

	user := &model.User{
		ID:        uuid.New().String(),
		Email:     request.Email,
		Name:      request.Name,
		CreatedAt: time.Now().UTC(),
	}

	if request.Password != "" {
		hash, err := security.HashPassword(request.Password)
		if err != nil {
			return nil, errors2.NewServerError(errors2.HASH_PASSWORD, err)
		}
		user.PasswordHash = hash
	}

	if err := store.InsertUser(user); err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.DUPLICATE_USER.Code,
				Message:     errors2.DUPLICATE_USER.Message,
				Description: "A user with this email already exists.",
			}, http.StatusConflict)
		}
		return nil, errors2.NewServerError(errors2.ADD_USER, err)
	}

	token, err := authn.IssueToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	log.GetLogger().Info("User registered.", log.String("user_id", user.ID))
	return &model.AuthResponse{User: *user, Token: token}, nil
}

// Login checks the credentials and issues a bearer token.
func (us *UserService) Login(request model.LoginRequest) (*model.AuthResponse, error) {

	if request.Email == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_REQUEST.Code,
			Message:     errors2.INVALID_REQUEST.Message,
			Description: "Email is required.",
		}, http.StatusBadRequest)
	}

	user, err := store.GetUserByEmail(request.Email)
	if err != nil {
		return nil, errors2.NewServerError(errors2.FETCH_USER, err)
	}
	if user == nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.USER_NOT_FOUND.Code,
			Message:     errors2.USER_NOT_FOUND.Message,
			Description: "No user exists for this email.",
		}, http.StatusNotFound)
	}

	if user.PasswordHash != "" && !security.ComparePassword(request.Password, user.PasswordHash) {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.UNAUTHORIZED.Code,
			Message:     errors2.UNAUTHORIZED.Message,
			Description: "Invalid credentials.",
		}, http.StatusUnauthorized)
	}

	token, err := authn.IssueToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{User: *user, Token: token}, nil
}
