package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratehub/ratehub/internal/domain/entity"
	"github.com/ratehub/ratehub/internal/session"
	"github.com/ratehub/ratehub/pkg/helpers"
)

func testJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
}

func issueSession(t *testing.T, sessions session.Store, jwt *helpers.JWTManager, uid int64, role entity.Role) string {
	t.Helper()
	sid := "sid-test"
	require.NoError(t, sessions.Set(context.Background(), sid, &session.Data{
		UserID: uid, Email: "user@test.com", Name: "Normal User Test", Role: role,
	}, time.Hour))
	token, _, err := jwt.GenerateAccessToken(uid, sid)
	require.NoError(t, err)
	return token
}

func authedRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	}
	return req
}

func setupAuthRouter(sessions session.Store, jwt *helpers.JWTManager, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{Auth(sessions, jwt)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": UserID(c)})
	})
	r.GET("/me", chain...)
	return r
}

func TestAuth_MissingCookie(t *testing.T) {
	r := setupAuthRouter(session.NewMemoryStore(), testJWT())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_GarbageToken(t *testing.T) {
	r := setupAuthRouter(session.NewMemoryStore(), testJWT())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest("not-a-jwt"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_DestroyedSession(t *testing.T) {
	sessions := session.NewMemoryStore()
	jwt := testJWT()
	token := issueSession(t, sessions, jwt, 7, entity.RoleUser)
	require.NoError(t, sessions.Destroy(context.Background(), "sid-test"))

	r := setupAuthRouter(sessions, jwt)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(token))

	// An unexpired token is worthless once the session is gone.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidSession(t *testing.T) {
	sessions := session.NewMemoryStore()
	jwt := testJWT()
	token := issueSession(t, sessions, jwt, 7, entity.RoleUser)

	r := setupAuthRouter(sessions, jwt)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(token))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"uid":7`)
}

func TestRequireRoles_Forbidden(t *testing.T) {
	sessions := session.NewMemoryStore()
	jwt := testJWT()
	token := issueSession(t, sessions, jwt, 7, entity.RoleUser)

	r := setupAuthRouter(sessions, jwt, RequireRoles(entity.RoleAdmin))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(token))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoles_Allowed(t *testing.T) {
	sessions := session.NewMemoryStore()
	jwt := testJWT()
	token := issueSession(t, sessions, jwt, 7, entity.RoleAdmin)

	r := setupAuthRouter(sessions, jwt, RequireRoles(entity.RoleAdmin))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(token))

	assert.Equal(t, http.StatusOK, w.Code)
}
