package session

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ratehub/ratehub/internal/domain/entity"
)

// RedisStore keeps sessions in a Redis hash per session id with a TTL.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func key(sid string) string { return "session:" + sid }

func (s *RedisStore) Get(ctx context.Context, sid string) (*Data, error) {
	fields, err := s.rdb.HGetAll(ctx, key(sid)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}
	uid, err := strconv.ParseInt(fields["user_id"], 10, 64)
	if err != nil {
		return nil, ErrNotFound
	}
	return &Data{
		UserID: uid,
		Email:  fields["email"],
		Name:   fields["name"],
		Role:   entity.Role(fields["role"]),
	}, nil
}

func (s *RedisStore) Set(ctx context.Context, sid string, d *Data, ttl time.Duration) error {
	k := key(sid)
	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, k, map[string]any{
		"user_id":    strconv.FormatInt(d.UserID, 10),
		"email":      d.Email,
		"name":       d.Name,
		"role":       string(d.Role),
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	})
	pipe.Expire(ctx, k, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Destroy(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, key(sid)).Err()
}

var _ Store = (*RedisStore)(nil)
