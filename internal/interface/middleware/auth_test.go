package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soraho/account-api/internal/domain/entity"
	"github.com/soraho/account-api/internal/infrastructure/token"
	"github.com/soraho/account-api/internal/interface/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuth(t *testing.T) {
	issuer := token.NewIssuer("test-signing-key", "account-api", "account-api-clients")

	engine := gin.New()
	engine.GET("/protected", middleware.Auth(issuer), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.CtxUserIDKey))
	})

	get := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		return rec
	}

	t.Run("lets a valid bearer token through and injects the subject", func(t *testing.T) {
		userID := entity.NewUserID()
		accessToken, err := issuer.Issue(userID)
		require.NoError(t, err)

		rec := get("Bearer " + accessToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID.String(), rec.Body.String())
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		rec := get("")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a header without the bearer scheme", func(t *testing.T) {
		rec := get("Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		rec := get("Bearer not-a-jwt")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a token signed with a different key", func(t *testing.T) {
		foreign := token.NewIssuer("other-signing-key", "account-api", "account-api-clients")
		accessToken, err := foreign.Issue(entity.NewUserID())
		require.NoError(t, err)

		rec := get("Bearer " + accessToken)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
