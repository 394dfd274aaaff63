package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

// sessionFileName is the single local credential slot inside the
// data directory.
const sessionFileName = "session.jwt"

// keyringService identifies EpiCRM entries in the OS keyring.
const keyringService = "epicrm"

// SessionStore is the durable handle to "the current session": one
// slot holding one opaque signed string.
type SessionStore interface {
	// Save overwrites the slot.
	Save(credential string) error
	// Load returns the stored credential, or ErrNoSession.
	Load() (string, error)
	// Clear deletes the slot. Clearing an absent slot is not an
	// error.
	Clear() error
}

// NewSessionStore selects a backend by name: "keyring" for the OS
// keyring, anything else for the credential file.
func NewSessionStore(backend, dataDir string) SessionStore {
	if backend == "keyring" {
		return &KeyringStore{service: keyringService}
	}
	return &FileStore{path: filepath.Join(dataDir, sessionFileName)}
}

// FileStore keeps the credential in a single file, the default
// backend.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore rooted in the given data
// directory.
func NewFileStore(dataDir string) *FileStore {
	return &FileStore{path: filepath.Join(dataDir, sessionFileName)}
}

func (f *FileStore) Save(credential string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(credential), 0600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

func (f *FileStore) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("reading session file: %w", err)
	}
	credential := strings.TrimSpace(string(data))
	if credential == "" {
		return "", ErrNoSession
	}
	return credential, nil
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

// KeyringStore keeps the credential in the OS keyring under a fixed
// service/account pair.
type KeyringStore struct {
	service string
}

func (k *KeyringStore) Save(credential string) error {
	if err := keyring.Set(k.service, "session", credential); err != nil {
		return fmt.Errorf("storing credential in keyring: %w", err)
	}
	return nil
}

func (k *KeyringStore) Load() (string, error) {
	credential, err := keyring.Get(k.service, "session")
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("reading credential from keyring: %w", err)
	}
	return credential, nil
}

func (k *KeyringStore) Clear() error {
	err := keyring.Delete(k.service, "session")
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("removing credential from keyring: %w", err)
	}
	return nil
}
