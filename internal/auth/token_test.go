package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestIssueVerifyRoundTrip(t *testing.T) {
	codec := NewCodec(testSecret, time.Hour)

	token, err := codec.Issue(42, "sales")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected subject 42, got %d", claims.UserID)
	}
	if claims.Role != "sales" {
		t.Fatalf("expected role sales, got %q", claims.Role)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Fatal("expiry not bounded by TTL")
	}
}

func TestVerifyGarbage(t *testing.T) {
	codec := NewCodec(testSecret, time.Hour)

	for _, s := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := codec.Verify(s); !errors.Is(err, ErrInvalidCredential) {
			t.Fatalf("Verify(%q): expected ErrInvalidCredential, got %v", s, err)
		}
	}
}

func TestVerifyTampered(t *testing.T) {
	codec := NewCodec(testSecret, time.Hour)

	token, err := codec.Issue(1, "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Flip a character in the signature.
	tampered := token[:len(token)-2] + "xx"
	if _, err := codec.Verify(tampered); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewCodec("other-secret", time.Hour).Issue(1, "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	codec := NewCodec(testSecret, time.Hour)
	if _, err := codec.Verify(token); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	// A credential issued two hours ago under a one-hour policy.
	now := time.Now().Add(-2 * time.Hour)
	claims := Claims{
		UserID: 7,
		Role:   "support",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "epicrm",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	codec := NewCodec(testSecret, time.Hour)
	if _, err := codec.Verify(token); !errors.Is(err, ErrExpiredCredential) {
		t.Fatalf("expected ErrExpiredCredential, got %v", err)
	}
}

func TestVerifyRejectsUnsignedAlgorithm(t *testing.T) {
	claims := Claims{
		UserID: 1,
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	codec := NewCodec(testSecret, time.Hour)
	if _, err := codec.Verify(token); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}
