package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/epic-events/epicrm/internal/models"
)

type fakeUsers struct {
	users map[uint]*models.User
}

func (f *fakeUsers) GetUser(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func testResolver(t *testing.T, users *fakeUsers) (*Resolver, SessionStore, *Codec) {
	t.Helper()
	sessions := NewFileStore(t.TempDir())
	codec := NewCodec(testSecret, time.Hour)
	return NewResolver(sessions, codec, users), sessions, codec
}

func salesUser(id uint) *models.User {
	return &models.User{
		ID:     id,
		Name:   "Alice",
		Email:  "alice@example.com",
		RoleID: 2,
		Role:   models.Role{ID: 2, Name: models.RoleSales},
	}
}

func TestResolveSuccess(t *testing.T) {
	users := &fakeUsers{users: map[uint]*models.User{5: salesUser(5)}}
	resolver, sessions, codec := testResolver(t, users)

	token, err := codec.Issue(5, models.RoleSales)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if err := sessions.Save(token); err != nil {
		t.Fatalf("Save: %v", err)
	}

	actor, err := resolver.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if actor.ID != 5 || actor.RoleName() != models.RoleSales {
		t.Fatalf("unexpected identity: id=%d role=%q", actor.ID, actor.RoleName())
	}
}

func TestResolveNoSession(t *testing.T) {
	resolver, _, _ := testResolver(t, &fakeUsers{})

	if _, err := resolver.Resolve(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestResolveCorruptedCredential(t *testing.T) {
	resolver, sessions, _ := testResolver(t, &fakeUsers{})

	if err := sessions.Save("garbage"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := resolver.Resolve(); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestResolveExpiredCredential(t *testing.T) {
	users := &fakeUsers{users: map[uint]*models.User{5: salesUser(5)}}
	resolver, sessions, _ := testResolver(t, users)

	issued := time.Now().Add(-2 * time.Hour)
	claims := Claims{
		UserID: 5,
		Role:   models.RoleSales,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(issued),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}
	if err := sessions.Save(token); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := resolver.Resolve(); !errors.Is(err, ErrExpiredCredential) {
		t.Fatalf("expected ErrExpiredCredential, got %v", err)
	}
}

func TestResolveDeletedUser(t *testing.T) {
	resolver, sessions, codec := testResolver(t, &fakeUsers{users: map[uint]*models.User{}})

	// Credential for a subject removed after issuance.
	token, err := codec.Issue(99, models.RoleSales)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if err := sessions.Save(token); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := resolver.Resolve(); !errors.Is(err, ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject, got %v", err)
	}
}

func TestResolveUsesLiveRole(t *testing.T) {
	// Role changed after issuance: the live row wins, the signed
	// claim is advisory.
	promoted := salesUser(5)
	promoted.RoleID = 1
	promoted.Role = models.Role{ID: 1, Name: models.RoleAdmin}
	users := &fakeUsers{users: map[uint]*models.User{5: promoted}}
	resolver, sessions, codec := testResolver(t, users)

	token, err := codec.Issue(5, models.RoleSales)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if err := sessions.Save(token); err != nil {
		t.Fatalf("Save: %v", err)
	}

	actor, err := resolver.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if actor.RoleName() != models.RoleAdmin {
		t.Fatalf("expected live role admin, got %q", actor.RoleName())
	}
}
