package repository

import "github.com/ratehub/ratehub/internal/domain/entity"

// RatingRepository defines rating persistence. Upsert must be atomic with
// respect to the (user_id, store_id) uniqueness constraint: concurrent
// submissions for the same pair serialize to one row at the storage layer.
type RatingRepository interface {
	// Upsert inserts a new rating or, when the (UserID, StoreID) pair already
	// exists, replaces its value in place. ID and CreatedAt of an updated row
	// are unchanged; r is populated with the persisted identity either way.
	Upsert(r *entity.Rating) error
	GetForStoreAndUser(userID, storeID int64) (*entity.Rating, error)
	// ListForStore returns ratings joined with the rater's name, newest first.
	ListForStore(storeID int64) ([]*entity.StoreRating, error)
	AverageForStore(storeID int64) (float64, error)
	Count() (int64, error)
}
