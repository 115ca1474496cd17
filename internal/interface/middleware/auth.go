package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/soraho/account-api/internal/infrastructure/token"
	"github.com/soraho/account-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth reads the Authorization header, fully verifies the bearer token
// (signature, expiry, issuer, audience) and injects the subject user id
// into the Gin context.
func Auth(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}

		userID, err := issuer.Verify(raw)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, userID.String())
		c.Next()
	}
}
