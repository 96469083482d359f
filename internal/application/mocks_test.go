package application

import (
	"github.com/stretchr/testify/mock"

	"github.com/ratehub/ratehub/internal/domain/entity"
	repo "github.com/ratehub/ratehub/internal/domain/repository"
)

// MockUserRepository mocks repo.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(u *entity.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id int64) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(id int64, passwordHash string) error {
	args := m.Called(id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) List(f repo.UserFilter) ([]*entity.User, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockStoreRepository mocks repo.StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Create(s *entity.Store) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockStoreRepository) GetByID(id int64) (*entity.Store, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Store), args.Error(1)
}

func (m *MockStoreRepository) ListRated(f repo.StoreFilter, forUserID int64) ([]*entity.RatedStore, error) {
	args := m.Called(f, forUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.RatedStore), args.Error(1)
}

func (m *MockStoreRepository) ListByOwner(ownerID int64) ([]*entity.Store, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Store), args.Error(1)
}

func (m *MockStoreRepository) UpdateLogoURL(id int64, url string) error {
	args := m.Called(id, url)
	return args.Error(0)
}

func (m *MockStoreRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockRatingRepository mocks repo.RatingRepository
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(r *entity.Rating) error {
	args := m.Called(r)
	return args.Error(0)
}

func (m *MockRatingRepository) GetForStoreAndUser(userID, storeID int64) (*entity.Rating, error) {
	args := m.Called(userID, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Rating), args.Error(1)
}

func (m *MockRatingRepository) ListForStore(storeID int64) ([]*entity.StoreRating, error) {
	args := m.Called(storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.StoreRating), args.Error(1)
}

func (m *MockRatingRepository) AverageForStore(storeID int64) (float64, error) {
	args := m.Called(storeID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRatingRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
