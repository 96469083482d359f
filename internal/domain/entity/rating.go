package entity

import "time"

// Rating is a single 1-5 score a user gave a store. The (UserID, StoreID)
// pair is unique; resubmitting replaces Value but keeps ID and CreatedAt.
type Rating struct {
	ID        int64
	UserID    int64
	StoreID   int64
	Value     int
	CreatedAt time.Time
}

// StoreRating is a rating joined with its author's name, for owner-facing
// listings.
type StoreRating struct {
	Rating
	UserName string
}
