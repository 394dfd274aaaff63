package main

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	if err != nil || id != 42 {
		t.Fatalf("parseID(42) = %d, %v", id, err)
	}
	for _, bad := range []string{"0", "-1", "abc", ""} {
		if _, err := parseID(bad); err == nil {
			t.Errorf("parseID(%q): expected error", bad)
		}
	}
}

func TestWrapNotFound(t *testing.T) {
	err := wrapNotFound(gorm.ErrRecordNotFound, "client", 7)
	if err == nil || err.Error() != "client 7 does not exist" {
		t.Fatalf("unexpected message: %v", err)
	}

	other := errors.New("disk on fire")
	if got := wrapNotFound(other, "client", 7); got != other {
		t.Fatalf("expected passthrough, got %v", got)
	}
}
