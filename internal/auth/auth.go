// Package auth establishes caller identity from a persisted session
// credential: issuing and verifying the signed token, storing the
// single local credential slot, and resolving it back to a live user.
package auth

import "errors"

var (
	// ErrInvalidCredentials indicates a failed email/password login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoSession indicates no credential is stored.
	ErrNoSession = errors.New("no active session")

	// ErrInvalidCredential indicates a malformed or tampered
	// credential (bad signature included).
	ErrInvalidCredential = errors.New("invalid session credential")

	// ErrExpiredCredential indicates a credential past its expiry.
	ErrExpiredCredential = errors.New("expired session credential")

	// ErrUnknownSubject indicates a credential whose subject no
	// longer exists in the store.
	ErrUnknownSubject = errors.New("unknown credential subject")
)
