package rbac

import (
	"github.com/epic-events/epicrm/internal/models"
)

// Denial reasons surfaced to the user verbatim.
const (
	ReasonAuthRequired   = "authentication required"
	ReasonRolePermission = "insufficient role permission"
	ReasonOwnership      = "not your resource"
)

// Decision is the outcome of an authorization check. On Denied the
// caller prints the reason and performs no side effects.
type Decision struct {
	Allowed bool
	Reason  string
}

// OwnershipCheck reports whether the actor has standing over the
// target record. Nil means the operation is not ownership-scoped.
type OwnershipCheck func(actor *models.User) bool

// Authorize is the single choke-point invoked before every protected
// operation:
//
//  1. nil actor → authentication required
//  2. role lacks the operation → insufficient role permission
//  3. non-privileged actor fails the ownership check → not your
//     resource
//
// admin and super_admin skip step 3 regardless of ownership.
func (en *Enforcer) Authorize(actor *models.User, operation string, owns OwnershipCheck) Decision {
	if actor == nil {
		return Decision{Reason: ReasonAuthRequired}
	}
	if !en.IsPermitted(actor.RoleName(), operation) {
		return Decision{Reason: ReasonRolePermission}
	}
	if owns != nil && !models.IsPrivileged(actor.RoleName()) && !owns(actor) {
		return Decision{Reason: ReasonOwnership}
	}
	return Decision{Allowed: true}
}
