package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ratehub/ratehub/internal/application"
	"github.com/ratehub/ratehub/internal/domain/entity"
	repo "github.com/ratehub/ratehub/internal/domain/repository"
	"github.com/ratehub/ratehub/internal/interface/middleware"
)

func setupAdminAPI(t *testing.T) *apiEnv {
	t.Helper()
	env := setupAPI(t)

	authSvc := application.NewAuthService(env.users, env.sessions, env.jwt, time.Hour, nil)
	userSvc := application.NewUserService(env.users, nil)
	storeSvc := application.NewStoreService(env.stores, nil)
	ratingSvc := application.NewRatingService(env.ratings, env.stores, env.users, nil)
	adminH := NewAdminHandler(authSvc, userSvc, storeSvc, ratingSvc, nil)

	admin := env.router.Group("/api/admin")
	admin.Use(middleware.Auth(env.sessions, env.jwt))
	admin.Use(middleware.RequireRoles(entity.RoleAdmin))
	admin.GET("/dashboard", adminH.Dashboard)
	admin.GET("/users", adminH.ListUsers)
	admin.POST("/stores", adminH.CreateStore)
	return env
}

func TestAdminDashboard_Stats(t *testing.T) {
	env := setupAdminAPI(t)
	ck := loginAs(t, env, 1, entity.RoleAdmin)

	env.users.On("Count").Return(int64(12), nil)
	env.stores.On("Count").Return(int64(4), nil)
	env.ratings.On("Count").Return(int64(31), nil)

	w := getPath(env.router, "/api/admin/dashboard", ck)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(12), data["totalUsers"])
	assert.Equal(t, float64(4), data["totalStores"])
	assert.Equal(t, float64(31), data["totalRatings"])
}

func TestAdminDashboard_ForbiddenForUsers(t *testing.T) {
	env := setupAdminAPI(t)
	ck := loginAs(t, env, 7, entity.RoleUser)

	w := getPath(env.router, "/api/admin/dashboard", ck)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminListUsers_FilterPassthrough(t *testing.T) {
	env := setupAdminAPI(t)
	ck := loginAs(t, env, 1, entity.RoleAdmin)

	env.users.On("List", repo.UserFilter{
		Search: "owner", Role: "owner", SortBy: "name", Order: "asc",
	}).Return([]*entity.User{
		{ID: 3, Name: "Store Owner User", Email: "owner@store.com", Role: entity.RoleOwner},
	}, nil)

	w := getPath(env.router, "/api/admin/users?search=owner&role=owner&sortBy=name&order=asc", ck)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].([]any)
	require.Len(t, data, 1)
	u := data[0].(map[string]any)
	assert.Equal(t, "owner@store.com", u["email"])
	// Listings never expose the password hash.
	_, present := u["password"]
	assert.False(t, present)
}

func TestAdminCreateStore_ValidationAndOwner(t *testing.T) {
	env := setupAdminAPI(t)
	ck := loginAs(t, env, 1, entity.RoleAdmin)

	// Address is mandatory for stores.
	w := postJSON(env.router, "/api/admin/stores", gin.H{
		"name":  "Tech Gadgets Store Inc.",
		"email": "contact@techgadgets.com",
	}, ck)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env.stores.On("Create", mock.AnythingOfType("*entity.Store")).Run(func(args mock.Arguments) {
		s := args.Get(0).(*entity.Store)
		s.ID = 1
		require.NotNil(t, s.OwnerID)
		assert.Equal(t, int64(3), *s.OwnerID)
	}).Return(nil)

	w = postJSON(env.router, "/api/admin/stores", gin.H{
		"name":    "Tech Gadgets Store Inc.",
		"email":   "contact@techgadgets.com",
		"address": "101 Tech Blvd, Silicon Valley",
		"ownerId": 3,
	}, ck)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	env.stores.AssertExpectations(t)
}
