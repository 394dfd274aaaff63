package auth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(t.TempDir())

	if err := s.Save("credential-one"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "credential-one" {
		t.Fatalf("expected credential-one, got %q", got)
	}

	// The slot holds exactly one credential; saving overwrites.
	if err := s.Save("credential-two"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _ = s.Load()
	if got != "credential-two" {
		t.Fatalf("expected credential-two, got %q", got)
	}
}

func TestFileStoreLoadAbsent(t *testing.T) {
	s := NewFileStore(t.TempDir())

	if _, err := s.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestFileStoreLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "session.jwt"), []byte("  \n"), 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	s := NewFileStore(dir)
	if _, err := s.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestFileStoreClearIdempotent(t *testing.T) {
	s := NewFileStore(t.TempDir())

	if err := s.Save("credential"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("first Clear: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
	if _, err := s.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after clear, got %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear on absent slot: %v", err)
	}
	if _, err := s.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestFileStorePermissions(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)
	if err := s.Save("credential"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "session.jwt"))
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Fatalf("expected 0600 permissions, got %o", perm)
	}
}

func TestNewSessionStoreBackendSelection(t *testing.T) {
	if _, ok := NewSessionStore("file", t.TempDir()).(*FileStore); !ok {
		t.Fatal("expected FileStore for file backend")
	}
	if _, ok := NewSessionStore("", t.TempDir()).(*FileStore); !ok {
		t.Fatal("expected FileStore as the default backend")
	}
	if _, ok := NewSessionStore("keyring", "").(*KeyringStore); !ok {
		t.Fatal("expected KeyringStore for keyring backend")
	}
}
