package session

import (
	"context"
	"errors"
	"time"

	"github.com/ratehub/ratehub/internal/domain/entity"
)

// ErrNotFound is returned when no live session exists for the given id.
var ErrNotFound = errors.New("session not found")

// Data is the identity held server-side for one session id.
type Data struct {
	UserID int64
	Email  string
	Name   string
	Role   entity.Role
}

// Store holds server-side sessions keyed by opaque session id. The client
// only ever sees the id (inside its token cookie); destroying the session
// here invalidates the cookie regardless of its expiry.
type Store interface {
	Get(ctx context.Context, sid string) (*Data, error)
	Set(ctx context.Context, sid string, d *Data, ttl time.Duration) error
	Destroy(ctx context.Context, sid string) error
}
