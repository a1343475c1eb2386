package authn

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/identity-event-analytics-service/internal/system/config"
	errors2 "github.com/wso2/identity-event-analytics-service/internal/system/errors"
	"github.com/wso2/identity-event-analytics-service/internal/system/log"
)

func setupRuntime() {
	config.OverrideEASRuntime(config.Config{
		Security: config.SecurityConfig{
			JWTSecret:       "unit-test-secret",
			TokenLifetimeHr: 1,
		},
	})
	_ = log.Init("ERROR")
}

func TestIssueAndValidateToken(t *testing.T) {
	setupRuntime()

	token, err := IssueToken("user-1", "user1@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	r := httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	userID, err := ValidateRequest(r)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestValidateRequestWithoutHeader(t *testing.T) {
	setupRuntime()

	r := httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil)

	_, err := ValidateRequest(r)
	requireUnauthorized(t, err)
}

func TestValidateRequestWithMalformedHeader(t *testing.T) {
	setupRuntime()

	r := httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil)
	r.Header.Set("Authorization", "Token abc")

	_, err := ValidateRequest(r)
	requireUnauthorized(t, err)
}

func TestValidateRequestWithTamperedToken(t *testing.T) {
	setupRuntime()

	claims := jwt.MapClaims{"userId": "intruder"}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil)
	r.Header.Set("Authorization", "Bearer "+signed)

	_, err = ValidateRequest(r)
	requireUnauthorized(t, err)
}

func TestValidateRequestWithExpiredToken(t *testing.T) {
	config.OverrideEASRuntime(config.Config{
		Security: config.SecurityConfig{
			JWTSecret:       "unit-test-secret",
			TokenLifetimeHr: -1,
		},
	})
	_ = log.Init("ERROR")

	token, err := IssueToken("user-1", "user1@example.com")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	_, err = ValidateRequest(r)
	requireUnauthorized(t, err)
}

func requireUnauthorized(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusUnauthorized, clientErr.StatusCode)
}
