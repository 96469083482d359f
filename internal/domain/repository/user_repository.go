package repository

import "github.com/ratehub/ratehub/internal/domain/entity"

// UserSort/UserOrder name the allowed sort inputs for ListUsers. Anything
// else falls back to creation time descending.
const (
	SortByName  = "name"
	SortByEmail = "email"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// UserFilter narrows and orders the admin user listing. Search matches
// case-insensitively as a substring of name or email. Role filters exactly;
// empty (or "all") keeps every role.
type UserFilter struct {
	Search string
	Role   string
	SortBy string
	Order  string
}

// UserRepository defines user persistence. Email lookups are exact and
// case-sensitive.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	UpdatePassword(id int64, passwordHash string) error
	List(f UserFilter) ([]*entity.User, error)
	Count() (int64, error)
}
