package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ratehub/ratehub/internal/domain/entity"
	repo "github.com/ratehub/ratehub/internal/domain/repository"
	"github.com/ratehub/ratehub/internal/session"
)

func loginAs(t *testing.T, env *apiEnv, uid int64, role entity.Role) *http.Cookie {
	t.Helper()
	sid := "sid-test"
	require.NoError(t, env.sessions.Set(context.Background(), sid, &session.Data{
		UserID: uid, Email: "user@test.com", Name: "Normal User Test", Role: role,
	}, time.Hour))
	token, _, err := env.jwt.GenerateAccessToken(uid, sid)
	require.NoError(t, err)
	return &http.Cookie{Name: "access_token", Value: token}
}

func TestListStores_WithMyRating(t *testing.T) {
	env := setupAPI(t)
	ck := loginAs(t, env, 7, entity.RoleUser)

	mine := 5
	env.stores.On("ListRated", repo.StoreFilter{}, int64(7)).Return([]*entity.RatedStore{
		{Store: entity.Store{ID: 1, Name: "Tech Gadgets Store Inc."}, AverageRating: 4.5, MyRating: &mine},
		{Store: entity.Store{ID: 2, Name: "Organic Foods Market"}, AverageRating: 0},
	}, nil)

	w := getPath(env.router, "/api/stores", ck)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	data := body["data"].([]any)
	require.Len(t, data, 2)

	first := data[0].(map[string]any)
	assert.Equal(t, 4.5, first["averageRating"])
	assert.Equal(t, float64(5), first["myRating"])

	// No rating from this user means no myRating key at all.
	second := data[1].(map[string]any)
	assert.Equal(t, float64(0), second["averageRating"])
	_, present := second["myRating"]
	assert.False(t, present)
}

func TestRate_RequiresAuth(t *testing.T) {
	env := setupAPI(t)

	w := postJSON(env.router, "/api/stores/1/rate", gin.H{"rating": 4})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRate_InvalidValue(t *testing.T) {
	env := setupAPI(t)
	ck := loginAs(t, env, 7, entity.RoleUser)

	for _, v := range []int{0, 6} {
		w := postJSON(env.router, "/api/stores/1/rate", gin.H{"rating": v}, ck)
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d", v)
	}
	env.ratings.AssertNotCalled(t, "Upsert")
}

func TestRate_UnknownStore(t *testing.T) {
	env := setupAPI(t)
	ck := loginAs(t, env, 7, entity.RoleUser)

	env.stores.On("GetByID", int64(99)).Return(nil, repo.ErrNotFound)

	w := postJSON(env.router, "/api/stores/99/rate", gin.H{"rating": 4}, ck)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRate_Success(t *testing.T) {
	env := setupAPI(t)
	ck := loginAs(t, env, 7, entity.RoleUser)

	env.stores.On("GetByID", int64(2)).Return(&entity.Store{ID: 2, Name: "Organic Foods Market"}, nil)
	env.ratings.On("Upsert", mock.AnythingOfType("*entity.Rating")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Rating).ID = 11
	}).Return(nil)

	w := postJSON(env.router, "/api/stores/2/rate", gin.H{"rating": 4}, ck)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(11), data["id"])
	assert.Equal(t, float64(4), data["rating"])
	env.ratings.AssertExpectations(t)
}

func TestOwnerDashboard_RequiresOwnerRole(t *testing.T) {
	env := setupAPI(t)
	ck := loginAs(t, env, 7, entity.RoleUser)

	w := getPath(env.router, "/api/owner/dashboard", ck)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOwnerDashboard_Rollup(t *testing.T) {
	env := setupAPI(t)
	ck := loginAs(t, env, 3, entity.RoleOwner)

	env.stores.On("ListByOwner", int64(3)).Return([]*entity.Store{
		{ID: 1, Name: "Tech Gadgets Store Inc."},
	}, nil)
	env.ratings.On("ListForStore", int64(1)).Return([]*entity.StoreRating{
		{Rating: entity.Rating{Value: 5}, UserName: "Normal User Test"},
		{Rating: entity.Rating{Value: 3}, UserName: "Another Rater Name"},
	}, nil)

	w := getPath(env.router, "/api/owner/dashboard", ck)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	data := body["data"].([]any)
	require.Len(t, data, 1)

	rollup := data[0].(map[string]any)
	assert.Equal(t, "Tech Gadgets Store Inc.", rollup["storeName"])
	assert.Equal(t, 4.0, rollup["averageRating"])
	ratings := rollup["ratings"].([]any)
	require.Len(t, ratings, 2)
	assert.Equal(t, "Normal User Test", ratings[0].(map[string]any)["userName"])
}
