package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ratehub/ratehub/internal/domain/entity"
	"github.com/ratehub/ratehub/internal/domain/repository"
)

type RatingRepository struct {
	pool *pgxpool.Pool
}

func NewRatingRepository(pool *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{pool: pool}
}

// Upsert relies on the unique (user_id, store_id) index: concurrent submits
// for the same pair serialize inside Postgres instead of racing in Go. An
// updated row keeps its id and created_at.
func (r *RatingRepository) Upsert(rt *entity.Rating) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO ratings (user_id, store_id, rating)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, store_id) DO UPDATE SET rating = EXCLUDED.rating
		RETURNING id, created_at
	`, rt.UserID, rt.StoreID, rt.Value)
	return row.Scan(&rt.ID, &rt.CreatedAt)
}

func (r *RatingRepository) GetForStoreAndUser(userID, storeID int64) (*entity.Rating, error) {
	ctx := context.Background()
	rt := &entity.Rating{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, store_id, rating, created_at
		FROM ratings
		WHERE user_id = $1 AND store_id = $2
	`, userID, storeID)
	if err := row.Scan(&rt.ID, &rt.UserID, &rt.StoreID, &rt.Value, &rt.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rt, nil
}

func (r *RatingRepository) ListForStore(storeID int64) ([]*entity.StoreRating, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.user_id, r.store_id, r.rating, r.created_at, u.name
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.store_id = $1
		ORDER BY r.created_at DESC
	`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.StoreRating
	for rows.Next() {
		sr := &entity.StoreRating{}
		if err := rows.Scan(&sr.ID, &sr.UserID, &sr.StoreID, &sr.Value, &sr.CreatedAt, &sr.UserName); err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

// AverageForStore returns 0 (not NULL) for a store with no ratings.
func (r *RatingRepository) AverageForStore(storeID int64) (float64, error) {
	ctx := context.Background()
	var avg float64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(AVG(rating), 0)::float8 FROM ratings WHERE store_id = $1
	`, storeID).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("average rating: %w", err)
	}
	return avg, nil
}

func (r *RatingRepository) Count() (int64, error) {
	ctx := context.Background()
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM ratings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return n, nil
}

var _ repository.RatingRepository = (*RatingRepository)(nil)
