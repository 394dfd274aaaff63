package models

import "time"

// Permission names an operation as "<resource>-<action>", e.g.
// "client-create". The special "user-password" permission gates
// password changes.
type Permission struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RolePermission is a role→permission edge of the authorization
// matrix. A role holds at most one edge per permission.
type RolePermission struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	RoleID       uint       `gorm:"not null;uniqueIndex:idx_role_permission" json:"role_id"`
	Role         Role       `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	PermissionID uint       `gorm:"not null;uniqueIndex:idx_role_permission" json:"permission_id"`
	Permission   Permission `gorm:"foreignKey:PermissionID" json:"permission,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
