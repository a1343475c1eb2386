package provider

import (
	"github.com/wso2/identity-event-analytics-service/internal/users/service"
)

// UsersProviderInterface defines the interface for the users provider.
type UsersProviderInterface interface {
	GetUserService() service.UserServiceInterface
}

// UsersProvider is the default implementation of the UsersProviderInterface.
type UsersProvider struct{}

// NewUsersProvider creates a new instance of UsersProvider.
func NewUsersProvider() UsersProviderInterface {

	return &UsersProvider{}
}

// GetUserService returns the user service instance.
func (up *UsersProvider) GetUserService() service.UserServiceInterface {

	return service.GetUserService()
}
