package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/epic-events/epicrm/internal/models"
)

// Resources and actions making up the "<resource>-<action>"
// permission names. Order is fixed so seeded ids are stable.
var (
	seedRoles     = []string{models.RoleAdmin, models.RoleSales, models.RoleSupport, models.RoleSuperAdmin}
	seedResources = []string{"user", "contract", "client", "role", "event"}
	seedActions   = []string{"create", "read", "list", "update", "delete"}
)

// seedMatrix maps each permission name to the roles granted it.
var seedMatrix = map[string][]string{
	"user-create":     {models.RoleAdmin, models.RoleSuperAdmin},
	"user-read":       {models.RoleAdmin, models.RoleSales, models.RoleSupport, models.RoleSuperAdmin},
	"user-list":       {models.RoleAdmin, models.RoleSales, models.RoleSuperAdmin},
	"user-update":     {models.RoleAdmin, models.RoleSuperAdmin},
	"user-delete":     {models.RoleAdmin, models.RoleSuperAdmin},
	"contract-create": {models.RoleAdmin, models.RoleSales, models.RoleSuperAdmin},
	"contract-read":   {models.RoleAdmin, models.RoleSales, models.RoleSupport, models.RoleSuperAdmin},
	"contract-list":   {models.RoleAdmin, models.RoleSales, models.RoleSuperAdmin},
	"contract-update": {models.RoleAdmin, models.RoleSales, models.RoleSuperAdmin},
	"contract-delete": {models.RoleAdmin, models.RoleSales, models.RoleSuperAdmin},
	"client-create":   {models.RoleAdmin, models.RoleSales, models.RoleSuperAdmin},
	"client-read":     {models.RoleAdmin, models.RoleSales, models.RoleSuperAdmin},
	"client-list":     {models.RoleAdmin, models.RoleSales, models.RoleSuperAdmin},
	"client-update":   {models.RoleAdmin, models.RoleSales, models.RoleSuperAdmin},
	"client-delete":   {models.RoleAdmin, models.RoleSales, models.RoleSuperAdmin},
	"role-create":     {models.RoleAdmin, models.RoleSuperAdmin},
	"role-read":       {models.RoleAdmin, models.RoleSales, models.RoleSupport, models.RoleSuperAdmin},
	"role-list":       {models.RoleAdmin, models.RoleSuperAdmin},
	"role-update":     {models.RoleAdmin, models.RoleSuperAdmin},
	"role-delete":     {models.RoleAdmin, models.RoleSuperAdmin},
	"event-create":    {models.RoleAdmin, models.RoleSales, models.RoleSuperAdmin},
	"event-read":      {models.RoleAdmin, models.RoleSales, models.RoleSupport, models.RoleSuperAdmin},
	"event-list":      {models.RoleAdmin, models.RoleSales, models.RoleSupport, models.RoleSuperAdmin},
	"event-update":    {models.RoleAdmin, models.RoleSales, models.RoleSupport, models.RoleSuperAdmin},
	"event-delete":    {models.RoleAdmin, models.RoleSales, models.RoleSupport, models.RoleSuperAdmin},
	"user-password":   {models.RoleAdmin, models.RoleSales, models.RoleSupport, models.RoleSuperAdmin},
}

// PermissionNames returns every seeded permission name in stable order.
func PermissionNames() []string {
	names := make([]string, 0, len(seedResources)*len(seedActions)+1)
	for _, res := range seedResources {
		for _, act := range seedActions {
			names = append(names, res+"-"+act)
		}
	}
	return append(names, "user-password")
}

// Seed populates roles, permissions, and the role→permission matrix.
// It is idempotent: existing rows and edges are left untouched.
func (s *Store) Seed() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		roles := make(map[string]*models.Role, len(seedRoles))
		for _, name := range seedRoles {
			role := &models.Role{Name: name}
			if err := tx.Where(models.Role{Name: name}).FirstOrCreate(role).Error; err != nil {
				return fmt.Errorf("seeding role %q: %w", name, err)
			}
			roles[name] = role
		}

		perms := make(map[string]*models.Permission)
		for _, name := range PermissionNames() {
			perm := &models.Permission{Name: name}
			if err := tx.Where(models.Permission{Name: name}).FirstOrCreate(perm).Error; err != nil {
				return fmt.Errorf("seeding permission %q: %w", name, err)
			}
			perms[name] = perm
		}

		for _, permName := range PermissionNames() {
			for _, roleName := range seedMatrix[permName] {
				edge := models.RolePermission{
					RoleID:       roles[roleName].ID,
					PermissionID: perms[permName].ID,
				}
				err := tx.Where(models.RolePermission{
					RoleID:       edge.RoleID,
					PermissionID: edge.PermissionID,
				}).FirstOrCreate(&edge).Error
				if err != nil {
					return fmt.Errorf("seeding edge %s→%s: %w", roleName, permName, err)
				}
			}
		}
		return nil
	})
}
