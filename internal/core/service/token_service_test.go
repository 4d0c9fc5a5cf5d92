package service

import (
	"errors"
	"testing"
	"time"

	"github.com/resumebuilderpro/resume-api/internal/core/domain"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("secret")

	token, err := svc.Issue("alice@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	subject, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %s", subject)
	}
}

func TestTokenService_ZeroTTLExpiresImmediately(t *testing.T) {
	svc := NewTokenService("secret")

	base := time.Now().UTC()
	svc.now = func() time.Time { return base }

	token, err := svc.Issue("alice@example.com", 0)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// One tick after issuance the token must already be rejected.
	svc.now = func() time.Time { return base.Add(2 * time.Second) }
	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Expiry(t *testing.T) {
	svc := NewTokenService("secret")

	base := time.Now().UTC()
	svc.now = func() time.Time { return base }

	token, err := svc.Issue("bob@example.com", 30*time.Minute)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	svc.now = func() time.Time { return base.Add(31 * time.Minute) }
	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a")
	verifier := NewTokenService("secret-b")

	token, err := issuer.Issue("alice@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService("secret")

	if _, err := svc.Validate("not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if _, err := svc.Validate(""); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
