package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ratehub/ratehub/internal/domain/entity"
	"github.com/ratehub/ratehub/internal/session"
	"github.com/ratehub/ratehub/pkg/helpers"
	"github.com/ratehub/ratehub/pkg/response"
)

// Context keys set by Auth on success.
const (
	CtxUserIDKey    = "userID"
	CtxUserRoleKey  = "userRole"
	CtxSessionIDKey = "sessionID"
	CtxUserNameKey  = "userName"
	CtxUserEmailKey = "userEmail"
)

// Auth validates the access token and ensures the session it names is still
// alive in the session store. A destroyed session (logout) rejects even an
// unexpired token.
func Auth(sessions session.Store, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "login required", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			c.Abort()
			return
		}
		sess, err := sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil || sess.UserID != claims.UserID {
			response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, sess.UserID)
		c.Set(CtxUserRoleKey, sess.Role)
		c.Set(CtxSessionIDKey, claims.SessionID)
		c.Set(CtxUserNameKey, sess.Name)
		c.Set(CtxUserEmailKey, sess.Email)
		c.Next()
	}
}

// RequireRoles authorizes an already-authenticated request against the
// closed role set. It must run after Auth.
func RequireRoles(roles ...entity.Role) gin.HandlerFunc {
	allowed := make(map[entity.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		v, ok := c.Get(CtxUserRoleKey)
		if !ok {
			response.Error[any](c, http.StatusUnauthorized, "login required", nil)
			c.Abort()
			return
		}
		role, _ := v.(entity.Role)
		if _, ok := allowed[role]; !ok {
			response.Error[any](c, http.StatusForbidden, "insufficient role", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id from the context.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(CtxUserIDKey)
}
