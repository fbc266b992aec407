package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/identity-mongo/pkg/helpers"
	"github.com/oksasatya/identity-mongo/pkg/response"
)

const CtxUserIDKey = "userID"

// SessionChecker reports whether a server-side session still exists for a user.
type SessionChecker interface {
	HasSession(ctx context.Context, userID string) bool
}

// Auth accepts an access token from the Authorization bearer header or the
// access_token cookie, requires role and, when sessions is set, a live session.
// It sets userID in the Gin context on success.
func Auth(jwt *helpers.JWTManager, role string, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abort(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid access token", err.Error())
			return
		}
		if role != "" && !claims.HasRole(role) {
			abort(c, http.StatusForbidden, "admin role required", nil)
			return
		}
		if sessions != nil && !sessions.HasSession(c.Request.Context(), claims.UserID) {
			abort(c, http.StatusUnauthorized, "session not found", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if scheme, token, ok := strings.Cut(h, " "); ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if token, err := c.Cookie(helpers.AccessTokenCookie); err == nil {
		return token
	}
	return ""
}

func abort(c *gin.Context, status int, message string, detail any) {
	response.Error[any](c, status, message, detail)
	c.Abort()
}
