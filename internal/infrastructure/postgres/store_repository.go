package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ratehub/ratehub/internal/domain/entity"
	"github.com/ratehub/ratehub/internal/domain/repository"
)

type StoreRepository struct {
	pool *pgxpool.Pool
}

func NewStoreRepository(pool *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{pool: pool}
}

func (r *StoreRepository) Create(s *entity.Store) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO stores (name, email, address, owner_id, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, s.Name, s.Email, s.Address, s.OwnerID, s.LogoURL)
	return row.Scan(&s.ID, &s.CreatedAt)
}

const storeColumns = `s.id, s.name, s.email, s.address, s.owner_id, s.logo_url, s.created_at`

func scanStore(row pgx.Row) (*entity.Store, error) {
	s := &entity.Store{}
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID, &s.LogoURL, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *StoreRepository) GetByID(id int64) (*entity.Store, error) {
	ctx := context.Background()
	return scanStore(r.pool.QueryRow(ctx, `
		SELECT `+storeColumns+` FROM stores s WHERE s.id = $1
	`, id))
}

// ListRated returns stores annotated with their average rating in a single
// grouped query. When forUserID is non-zero the requesting user's own rating
// is resolved in the same statement; zero yields NULL for every row.
func (r *StoreRepository) ListRated(f repository.StoreFilter, forUserID int64) ([]*entity.RatedStore, error) {
	ctx := context.Background()

	args := []any{forUserID}
	var where []string
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where = append(where, "s.name ILIKE $"+strconv.Itoa(len(args)))
	}
	if f.Address != "" {
		args = append(args, "%"+f.Address+"%")
		where = append(where, "s.address ILIKE $"+strconv.Itoa(len(args)))
	}

	q := `
		SELECT ` + storeColumns + `,
		       COALESCE(AVG(r.rating), 0)::float8 AS avg_rating,
		       mr.rating AS my_rating
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id
		LEFT JOIN ratings mr ON mr.store_id = s.id AND mr.user_id = $1`
	if len(where) > 0 {
		q += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	q += "\n\t\tGROUP BY s.id, mr.rating"
	switch f.SortBy {
	case repository.SortByRating:
		q += "\n\t\tORDER BY avg_rating DESC"
	case repository.SortByName:
		q += "\n\t\tORDER BY s.name ASC"
	default:
		q += "\n\t\tORDER BY s.id ASC"
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.RatedStore
	for rows.Next() {
		rs := &entity.RatedStore{}
		if err := rows.Scan(&rs.ID, &rs.Name, &rs.Email, &rs.Address, &rs.OwnerID, &rs.LogoURL,
			&rs.CreatedAt, &rs.AverageRating, &rs.MyRating); err != nil {
			return nil, err
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}

func (r *StoreRepository) ListByOwner(ownerID int64) ([]*entity.Store, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+storeColumns+` FROM stores s WHERE s.owner_id = $1 ORDER BY s.id ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *StoreRepository) UpdateLogoURL(id int64, url string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `UPDATE stores SET logo_url = $1 WHERE id = $2`, url, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *StoreRepository) Count() (int64, error) {
	ctx := context.Background()
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM stores`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stores: %w", err)
	}
	return n, nil
}

var _ repository.StoreRepository = (*StoreRepository)(nil)
