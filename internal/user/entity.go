// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

// User mirrors a member of the sales team. The id is issued by the external
// identity provider and treated as an opaque string; it is never generated
// here.
type User struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	FirstName *string   `db:"first_name"`
	LastName  *string   `db:"last_name"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Recognized roles. The column is an open string with a default; unknown
// values are stored as supplied.
const (
	RoleAdmin   = "admin"
	RoleSales   = "sales"
	RoleSupport = "support"

	DefaultRole = RoleSales
)
