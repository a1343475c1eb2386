package services

import (
	"net/http"

	"github.com/wso2/identity-event-analytics-service/internal/system/authn"
	sysctx "github.com/wso2/identity-event-analytics-service/internal/system/context"
	"github.com/wso2/identity-event-analytics-service/internal/system/middleware"
	"github.com/wso2/identity-event-analytics-service/internal/system/utils"
)

// authenticated wraps a handler with bearer token validation and
// per-user throttling. The resolved user id is injected into the
// request context for downstream handlers.
func authenticated(limiter *middleware.RateLimiter, next http.HandlerFunc) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authn.ValidateRequest(r)
		if err != nil {
			utils.HandleError(w, err)
			return
		}
		if limiter != nil && !limiter.Enforce(w, userID) {
			return
		}
		next(w, r.WithContext(sysctx.WithUserID(r.Context(), userID)))
	}
}
