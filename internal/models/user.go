package models

import (
	"time"
)

// User represents a staff member, the actor behind every command.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	RoleID       uint      `gorm:"not null" json:"role_id"`
	Role         Role      `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RoleName returns the name of the user's role, or "" when the role
// association was not preloaded.
func (u *User) RoleName() string {
	if u == nil {
		return ""
	}
	return u.Role.Name
}
