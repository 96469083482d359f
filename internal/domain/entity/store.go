package entity

import "time"

// Store is a rateable store record. OwnerID is nil for stores without an
// assigned owner; an owner may own many stores.
type Store struct {
	ID        int64
	Name      string
	Email     string
	Address   string
	OwnerID   *int64
	LogoURL   string
	CreatedAt time.Time
}

// RatedStore is a store annotated with read-time aggregates for listings.
// MyRating is nil when the requesting user has not rated the store.
type RatedStore struct {
	Store
	AverageRating float64
	MyRating      *int
}
