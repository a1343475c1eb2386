package services

import (
	"net/http"
	"time"

	"github.com/wso2/identity-event-analytics-service/internal/system/config"
	"github.com/wso2/identity-event-analytics-service/internal/system/constants"
	"github.com/wso2/identity-event-analytics-service/internal/system/middleware"
	"github.com/wso2/identity-event-analytics-service/internal/users/handler"
)

// AuthService exposes user registration and login.
type AuthService struct {
	userHandler *handler.UserHandler
	limiter     *middleware.RateLimiter
}

// NewAuthService creates a new AuthService instance and registers its routes.
func NewAuthService(mux *http.ServeMux, apiBasePath string) *AuthService {

	rateConf := config.GetEASRuntime().Config.RateLimit
	instance := &AuthService{
		userHandler: handler.NewUserHandler(),
		limiter: middleware.NewRateLimiter(rateConf.AuthPerWindow,
			time.Duration(rateConf.AuthWindowMinutes)*time.Minute),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

// RegisterRoutes registers the authentication routes. Both endpoints
// are unauthenticated and throttled per client address.
func (s *AuthService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	basePath := apiBasePath + "/" + constants.AuthApiPath

	mux.HandleFunc("POST "+basePath+"/register", func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Enforce(w, middleware.ClientKey(r)) {
			return
		}
		s.userHandler.Register(w, r)
	})

	mux.HandleFunc("POST "+basePath+"/login", func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Enforce(w, middleware.ClientKey(r)) {
			return
		}
		s.userHandler.Login(w, r)
	})
}
