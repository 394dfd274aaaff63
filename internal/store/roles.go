package store

import (
	"fmt"

	"github.com/epic-events/epicrm/internal/models"
)

// GetRole fetches a role by id.
func (s *Store) GetRole(id uint) (*models.Role, error) {
	var role models.Role
	if err := s.db.First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// GetRoleByName fetches a role by its unique name.
func (s *Store) GetRoleByName(name string) (*models.Role, error) {
	var role models.Role
	if err := s.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// ListRoles returns all roles.
func (s *Store) ListRoles() ([]models.Role, error) {
	var roles []models.Role
	if err := s.db.Order("id").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}
	return roles, nil
}

// RolePermissions returns the permission names granted to a role,
// resolved through the RolePermission → Permission join.
func (s *Store) RolePermissions(roleName string) ([]string, error) {
	var names []string
	err := s.db.Model(&models.RolePermission{}).
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Where("roles.name = ?", roleName).
		Order("permissions.id").
		Pluck("permissions.name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("resolving permissions for role %q: %w", roleName, err)
	}
	return names, nil
}

// AllRolePermissions returns every (role name, permission name) edge
// of the seeded matrix.
func (s *Store) AllRolePermissions() ([][2]string, error) {
	type row struct {
		RoleName       string
		PermissionName string
	}
	var rows []row
	err := s.db.Model(&models.RolePermission{}).
		Select("roles.name AS role_name, permissions.name AS permission_name").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading role permissions: %w", err)
	}
	edges := make([][2]string, 0, len(rows))
	for _, r := range rows {
		edges = append(edges, [2]string{r.RoleName, r.PermissionName})
	}
	return edges, nil
}
