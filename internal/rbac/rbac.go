// Package rbac resolves "can role R perform operation P" against the
// seeded role→permission matrix and gates every command behind a
// single authorization decision.
package rbac

import (
	_ "embed"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:embed model.conf
var modelConf string

// MatrixSource supplies the seeded (role name, permission name)
// edges. *store.Store satisfies it.
type MatrixSource interface {
	AllRolePermissions() ([][2]string, error)
}

// Enforcer answers permission queries for the process lifetime. The
// matrix is loaded once at construction and never recomputed
// mid-process; a role or matrix change takes effect on the next
// invocation.
type Enforcer struct {
	e *casbin.Enforcer
}

// NewEnforcer loads the role→permission matrix from src into an
// in-memory Casbin enforcer.
func NewEnforcer(src MatrixSource) (*Enforcer, error) {
	m, err := model.NewModelFromString(modelConf)
	if err != nil {
		return nil, fmt.Errorf("parsing casbin model: %w", err)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("creating casbin enforcer: %w", err)
	}

	edges, err := src.AllRolePermissions()
	if err != nil {
		return nil, err
	}
	for _, edge := range edges {
		roleName, permName := edge[0], edge[1]
		resource, action, ok := splitOperation(permName)
		if !ok {
			slog.Warn("Skipping malformed permission name", "permission", permName)
			continue
		}
		if _, err := e.AddPolicy(roleName, resource, action); err != nil {
			return nil, fmt.Errorf("loading policy %s→%s: %w", roleName, permName, err)
		}
	}

	return &Enforcer{e: e}, nil
}

// IsPermitted reports whether the role holds the named operation.
// Unknown or malformed operation names fail closed.
func (en *Enforcer) IsPermitted(roleName, operation string) bool {
	resource, action, ok := splitOperation(operation)
	if !ok {
		slog.Warn("Denying malformed operation name", "operation", operation)
		return false
	}
	allowed, err := en.e.Enforce(roleName, resource, action)
	if err != nil {
		slog.Warn("Enforce failed, denying", "operation", operation, "error", err)
		return false
	}
	return allowed
}

// PermissionsFor returns the sorted operation names granted to a
// role.
func (en *Enforcer) PermissionsFor(roleName string) ([]string, error) {
	policies, err := en.e.GetFilteredPolicy(0, roleName)
	if err != nil {
		return nil, fmt.Errorf("listing permissions for role %q: %w", roleName, err)
	}
	names := make([]string, 0, len(policies))
	for _, policy := range policies {
		if len(policy) >= 3 {
			names = append(names, policy[1]+"-"+policy[2])
		}
	}
	sort.Strings(names)
	return names, nil
}

// splitOperation cuts "<resource>-<action>" at the first dash.
// Resource names never contain a dash.
func splitOperation(operation string) (resource, action string, ok bool) {
	resource, action, found := strings.Cut(operation, "-")
	if !found || resource == "" || action == "" {
		return "", "", false
	}
	return resource, action, true
}
