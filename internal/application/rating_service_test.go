package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ratehub/ratehub/internal/domain/entity"
	repo "github.com/ratehub/ratehub/internal/domain/repository"
)

func newRatingService() (*RatingService, *MockRatingRepository, *MockStoreRepository, *MockUserRepository) {
	ratings := new(MockRatingRepository)
	stores := new(MockStoreRepository)
	users := new(MockUserRepository)
	return NewRatingService(ratings, stores, users, nil), ratings, stores, users
}

func TestSubmit_ValueOutOfRange(t *testing.T) {
	svc, ratings, stores, _ := newRatingService()

	for _, v := range []int{0, -1, 6, 100} {
		_, err := svc.Submit(1, 1, v)
		assert.ErrorIs(t, err, ErrInvalidRating, "value %d", v)
	}
	stores.AssertNotCalled(t, "GetByID", mock.Anything)
	ratings.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestSubmit_UnknownStore(t *testing.T) {
	svc, _, stores, _ := newRatingService()

	stores.On("GetByID", int64(99)).Return(nil, repo.ErrNotFound)

	_, err := svc.Submit(1, 99, 4)
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestSubmit_UpsertsRating(t *testing.T) {
	svc, ratings, stores, _ := newRatingService()

	stores.On("GetByID", int64(2)).Return(&entity.Store{ID: 2, Name: "Organic Foods Market"}, nil)
	ratings.On("Upsert", mock.AnythingOfType("*entity.Rating")).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Rating).ID = 10
	}).Return(nil)

	r, err := svc.Submit(7, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(10), r.ID)
	assert.Equal(t, int64(7), r.UserID)
	assert.Equal(t, int64(2), r.StoreID)
	assert.Equal(t, 4, r.Value)
	ratings.AssertExpectations(t)
}

func TestMyRating_NoneIsNil(t *testing.T) {
	svc, ratings, _, _ := newRatingService()

	ratings.On("GetForStoreAndUser", int64(7), int64(2)).Return(nil, repo.ErrNotFound)

	r, err := svc.MyRating(7, 2)
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestOwnerRollup_AveragesPerStore(t *testing.T) {
	svc, ratings, stores, _ := newRatingService()

	stores.On("ListByOwner", int64(3)).Return([]*entity.Store{
		{ID: 1, Name: "Tech Gadgets Store Inc."},
		{ID: 2, Name: "Organic Foods Market"},
	}, nil)
	ratings.On("ListForStore", int64(1)).Return([]*entity.StoreRating{
		{Rating: entity.Rating{Value: 5}, UserName: "Normal User Test"},
		{Rating: entity.Rating{Value: 3}, UserName: "Another Rater Name"},
	}, nil)
	ratings.On("ListForStore", int64(2)).Return([]*entity.StoreRating{}, nil)

	rollups, err := svc.OwnerRollup(3)
	require.NoError(t, err)
	require.Len(t, rollups, 2)

	assert.Equal(t, "Tech Gadgets Store Inc.", rollups[0].StoreName)
	assert.Equal(t, 4.0, rollups[0].AverageRating)
	require.Len(t, rollups[0].Ratings, 2)
	assert.Equal(t, "Normal User Test", rollups[0].Ratings[0].UserName)
	assert.Equal(t, 5, rollups[0].Ratings[0].Rating)

	// A store nobody has rated averages to 0, not NaN.
	assert.Equal(t, 0.0, rollups[1].AverageRating)
	assert.Empty(t, rollups[1].Ratings)
}

func TestOwnerRollup_NoStores(t *testing.T) {
	svc, _, stores, _ := newRatingService()

	stores.On("ListByOwner", int64(8)).Return([]*entity.Store{}, nil)

	rollups, err := svc.OwnerRollup(8)
	require.NoError(t, err)
	assert.NotNil(t, rollups)
	assert.Empty(t, rollups)
}

func TestPlatformStats(t *testing.T) {
	svc, ratings, stores, users := newRatingService()

	users.On("Count").Return(int64(12), nil)
	stores.On("Count").Return(int64(4), nil)
	ratings.On("Count").Return(int64(31), nil)

	stats, err := svc.PlatformStats()
	require.NoError(t, err)
	assert.Equal(t, PlatformStats{TotalUsers: 12, TotalStores: 4, TotalRatings: 31}, stats)
}
