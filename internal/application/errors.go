package application

import "errors"

// Sentinel errors for the application layer. Handlers map these onto HTTP
// status codes; anything else surfaces as an internal error.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrStoreNotFound      = errors.New("store not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRating      = errors.New("rating must be an integer between 1 and 5")
)
