package authUtils

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	tok, claims, err := GenerateToken("secret", "u1", "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if claims.JTI == "" {
		t.Fatalf("expected a jti")
	}

	got, err := ParseToken("secret", tok)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if got.UserID != "u1" || got.UserType != "admin" || got.JTI != claims.JTI {
		t.Fatalf("unexpected claims: %+v", got)
	}
	if got.ExpiresAt.Unix() != claims.ExpiresAt.Unix() {
		t.Fatalf("exp mismatch: %v vs %v", got.ExpiresAt, claims.ExpiresAt)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tok, _, err := GenerateToken("secret", "u1", "user", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken("other", tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	tok, _, err := GenerateToken("secret", "u1", "user", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken("secret", tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	if _, _, err := GenerateToken("", "u1", "user", time.Hour); err == nil {
		t.Fatalf("expected error without secret")
	}
}
