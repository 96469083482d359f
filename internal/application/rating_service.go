package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/ratehub/ratehub/internal/domain/entity"
	repo "github.com/ratehub/ratehub/internal/domain/repository"
)

// RatingService is the rating ledger plus the read-time aggregation engine.
// Nothing derived is persisted; averages and rollups are computed per call.
type RatingService struct {
	Ratings repo.RatingRepository
	Stores  repo.StoreRepository
	Users   repo.UserRepository
	Logger  *logrus.Logger
}

func NewRatingService(ratings repo.RatingRepository, stores repo.StoreRepository, users repo.UserRepository, logger *logrus.Logger) *RatingService {
	return &RatingService{Ratings: ratings, Stores: stores, Users: users, Logger: logger}
}

// Submit records or replaces the user's rating for a store. The storage
// layer's unique constraint keeps concurrent submissions to one row.
func (s *RatingService) Submit(userID, storeID int64, value int) (*entity.Rating, error) {
	if value < 1 || value > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.Stores.GetByID(storeID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	r := &entity.Rating{UserID: userID, StoreID: storeID, Value: value}
	if err := s.Ratings.Upsert(r); err != nil {
		return nil, err
	}
	return r, nil
}

// MyRating returns the user's rating for a store, or nil if none exists.
func (s *RatingService) MyRating(userID, storeID int64) (*entity.Rating, error) {
	r, err := s.Ratings.GetForStoreAndUser(userID, storeID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	return r, err
}

// AverageFor is 0 (not NaN) for a store with no ratings.
func (s *RatingService) AverageFor(storeID int64) (float64, error) {
	return s.Ratings.AverageForStore(storeID)
}

// RollupRating is one rater's entry in an owner rollup.
type RollupRating struct {
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
}

// StoreRollup is the per-store aggregate on the owner dashboard.
type StoreRollup struct {
	StoreID       int64          `json:"storeId"`
	StoreName     string         `json:"storeName"`
	AverageRating float64        `json:"averageRating"`
	Ratings       []RollupRating `json:"ratings"`
}

// OwnerRollup aggregates every store owned by ownerID. An owner with no
// stores gets an empty slice, not an error.
func (s *RatingService) OwnerRollup(ownerID int64) ([]StoreRollup, error) {
	stores, err := s.Stores.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	rollups := make([]StoreRollup, 0, len(stores))
	for _, st := range stores {
		ratings, err := s.Ratings.ListForStore(st.ID)
		if err != nil {
			return nil, err
		}
		entries := make([]RollupRating, 0, len(ratings))
		sum := 0
		for _, r := range ratings {
			entries = append(entries, RollupRating{UserName: r.UserName, Rating: r.Value})
			sum += r.Value
		}
		avg := 0.0
		if len(ratings) > 0 {
			avg = float64(sum) / float64(len(ratings))
		}
		rollups = append(rollups, StoreRollup{
			StoreID:       st.ID,
			StoreName:     st.Name,
			AverageRating: avg,
			Ratings:       entries,
		})
	}
	return rollups, nil
}

// PlatformStats are the admin dashboard counters.
type PlatformStats struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

func (s *RatingService) PlatformStats() (PlatformStats, error) {
	users, err := s.Users.Count()
	if err != nil {
		return PlatformStats{}, err
	}
	stores, err := s.Stores.Count()
	if err != nil {
		return PlatformStats{}, err
	}
	ratings, err := s.Ratings.Count()
	if err != nil {
		return PlatformStats{}, err
	}
	return PlatformStats{TotalUsers: users, TotalStores: stores, TotalRatings: ratings}, nil
}
