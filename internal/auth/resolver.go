package auth

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/epic-events/epicrm/internal/models"
)

// UserSource looks up the live user row for a credential subject.
// *store.Store satisfies it.
type UserSource interface {
	GetUser(id uint) (*models.User, error)
}

// Resolver turns the stored session credential into a live actor.
// It is invoked once per CLI invocation; the result stands for the
// remainder of the process lifetime.
type Resolver struct {
	sessions SessionStore
	codec    *Codec
	users    UserSource
}

// NewResolver wires a Resolver over the given session store, codec,
// and user source.
func NewResolver(sessions SessionStore, codec *Codec, users UserSource) *Resolver {
	return &Resolver{sessions: sessions, codec: codec, users: users}
}

// Resolve loads and verifies the current credential and returns the
// live user with its role preloaded. Failures are one of
// ErrNoSession, ErrInvalidCredential, ErrExpiredCredential, or
// ErrUnknownSubject; the caller must treat all of them as "not
// authenticated" and perform no further action.
//
// Privilege follows the live role row, not the signed role claim:
// a role change after issuance takes effect here.
func (r *Resolver) Resolve() (*models.User, error) {
	credential, err := r.sessions.Load()
	if err != nil {
		return nil, err
	}

	claims, err := r.codec.Verify(credential)
	if err != nil {
		return nil, err
	}

	user, err := r.users.GetUser(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Warn("Credential references a deleted user", "user_id", claims.UserID)
			return nil, ErrUnknownSubject
		}
		return nil, err
	}

	if claims.Role != user.RoleName() {
		slog.Debug("Signed role claim diverges from live role",
			"claimed", claims.Role, "live", user.RoleName())
	}

	return user, nil
}
