package entity

import "time"

// Role is the closed set of authorization roles. Role checks compare against
// these constants only; free-form role strings never enter the system.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleOwner:
		return true
	}
	return false
}

// User is the aggregate root for the identity domain.
// Password holds the scrypt stored form (hex key "." hex salt) and is never
// serialized to API responses.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	Address   string
	Role      Role
	CreatedAt time.Time
}
