package entity

type UserRole string

const (
	RoleOwner    UserRole = "owner"
	RoleOperator UserRole = "operator"
	RoleClient   UserRole = "client"
)

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Phone        *string  `db:"phone"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}

// IsStaff reports whether the user may see profit figures and manage
// bookings and the service catalog. Owner dan operator sama-sama staff.
func (u *User) IsStaff() bool {
	return u.Role == RoleOwner || u.Role == RoleOperator
}
