// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

// User rows are provisioned by seeding or an admin; the client-facing flows
// never create, mutate, or delete them.
type User struct {
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)
