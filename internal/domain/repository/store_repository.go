package repository

import "github.com/ratehub/ratehub/internal/domain/entity"

const SortByRating = "rating"

// StoreFilter narrows the store listing. Search matches the name, Address
// matches the address, both case-insensitive substrings.
type StoreFilter struct {
	Search  string
	Address string
	SortBy  string // name, rating, or empty for insertion order
}

// StoreRepository defines store persistence. ListRated annotates each store
// with its average rating in a single grouped query; when forUserID is
// non-zero it also resolves that user's own rating per store.
type StoreRepository interface {
	Create(s *entity.Store) error
	GetByID(id int64) (*entity.Store, error)
	ListRated(f StoreFilter, forUserID int64) ([]*entity.RatedStore, error)
	ListByOwner(ownerID int64) ([]*entity.Store, error)
	UpdateLogoURL(id int64, url string) error
	Count() (int64, error)
}
