package rbac

import (
	"reflect"
	"testing"
)

type fakeMatrix [][2]string

func (f fakeMatrix) AllRolePermissions() ([][2]string, error) {
	return f, nil
}

func testEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	en, err := NewEnforcer(fakeMatrix{
		{"sales", "client-create"},
		{"sales", "client-update"},
		{"support", "event-update"},
		{"admin", "client-create"},
		{"admin", "user-delete"},
		{"sales", "user-password"},
	})
	if err != nil {
		t.Fatalf("NewEnforcer: %v", err)
	}
	return en
}

func TestIsPermitted(t *testing.T) {
	en := testEnforcer(t)

	cases := []struct {
		role, op string
		want     bool
	}{
		{"sales", "client-create", true},
		{"sales", "client-update", true},
		{"sales", "user-delete", false},
		{"support", "client-create", false},
		{"support", "event-update", true},
		{"admin", "user-delete", true},
		{"sales", "user-password", true},
		{"unknown-role", "client-create", false},
	}
	for _, c := range cases {
		if got := en.IsPermitted(c.role, c.op); got != c.want {
			t.Errorf("IsPermitted(%q, %q) = %v, want %v", c.role, c.op, got, c.want)
		}
	}
}

func TestIsPermittedDeterministic(t *testing.T) {
	en := testEnforcer(t)

	for i := 0; i < 3; i++ {
		if !en.IsPermitted("sales", "client-create") {
			t.Fatal("expected stable allow across repeated checks")
		}
		if en.IsPermitted("support", "client-create") {
			t.Fatal("expected stable deny across repeated checks")
		}
	}
}

func TestUnknownOperationFailsClosed(t *testing.T) {
	en := testEnforcer(t)

	// Operations absent from the matrix entirely, including
	// malformed names, must deny rather than fault.
	for _, op := range []string{"client-explode", "nodash", "", "-create", "client-"} {
		if en.IsPermitted("admin", op) {
			t.Errorf("IsPermitted(admin, %q) = true, want fail-closed deny", op)
		}
	}
}

func TestPermissionsFor(t *testing.T) {
	en := testEnforcer(t)

	perms, err := en.PermissionsFor("sales")
	if err != nil {
		t.Fatalf("PermissionsFor: %v", err)
	}
	want := []string{"client-create", "client-update", "user-password"}
	if !reflect.DeepEqual(perms, want) {
		t.Fatalf("expected %v, got %v", want, perms)
	}

	perms, err = en.PermissionsFor("nobody")
	if err != nil {
		t.Fatalf("PermissionsFor: %v", err)
	}
	if len(perms) != 0 {
		t.Fatalf("expected no permissions for unknown role, got %v", perms)
	}
}

func TestSplitOperation(t *testing.T) {
	resource, action, ok := splitOperation("client-create")
	if !ok || resource != "client" || action != "create" {
		t.Fatalf("unexpected split: %q %q %v", resource, action, ok)
	}
	if _, _, ok := splitOperation("noaction"); ok {
		t.Fatal("expected failure for name without a dash")
	}
	// user-password cuts at the first dash.
	resource, action, ok = splitOperation("user-password")
	if !ok || resource != "user" || action != "password" {
		t.Fatalf("unexpected split: %q %q %v", resource, action, ok)
	}
}
