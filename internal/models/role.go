package models

import "time"

// Role names seeded at initialization. The set is fixed in practice.
const (
	RoleAdmin      = "admin"
	RoleSales      = "sales"
	RoleSupport    = "support"
	RoleSuperAdmin = "super_admin"
)

// Role represents a user role (admin, sales, support, super_admin).
type Role struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPrivileged reports whether a role bypasses ownership checks.
func IsPrivileged(roleName string) bool {
	return roleName == RoleAdmin || roleName == RoleSuperAdmin
}
