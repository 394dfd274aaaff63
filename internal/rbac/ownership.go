package rbac

import (
	"github.com/epic-events/epicrm/internal/models"
)

// ClientOwnership holds for the client's assigned sales contact.
func ClientOwnership(client *models.Client) OwnershipCheck {
	return func(actor *models.User) bool {
		return client.SalesContactID == actor.ID
	}
}

// ContractOwnership holds for the sales contact of the contract's
// client. The contract must be loaded with its client association.
func ContractOwnership(contract *models.Contract) OwnershipCheck {
	return func(actor *models.User) bool {
		return contract.Client.SalesContactID == actor.ID
	}
}

// EventOwnership holds for the assigned support contact and for the
// sales rep of the originating client. The event must be loaded with
// its contract and the contract's client.
func EventOwnership(event *models.Event) OwnershipCheck {
	return func(actor *models.User) bool {
		return event.SupportContactID == actor.ID ||
			event.Contract.Client.SalesContactID == actor.ID
	}
}

// SelfOrPrivileged holds when the actor targets their own user
// record. Used by the password-change flow.
func SelfOrPrivileged(target *models.User) OwnershipCheck {
	return func(actor *models.User) bool {
		return target.ID == actor.ID
	}
}
