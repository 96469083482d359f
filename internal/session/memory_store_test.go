package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratehub/ratehub/internal/domain/entity"
)

func TestMemoryStore_SetGetDestroy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	d := &Data{UserID: 7, Email: "user@test.com", Name: "Normal User Test", Role: entity.RoleUser}
	require.NoError(t, s.Set(ctx, "sid-1", d, time.Minute))

	got, err := s.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, *d, *got)

	require.NoError(t, s.Destroy(ctx, "sid-1"))
	_, err = s.Get(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_UnknownSession(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "sid-exp", &Data{UserID: 1}, -time.Second))
	_, err := s.Get(ctx, "sid-exp")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_DestroyIsIdempotent(t *testing.T) {
	s := NewMemoryStore()
	assert.NoError(t, s.Destroy(context.Background(), "never-existed"))
}
