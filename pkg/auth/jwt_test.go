package auth

import (
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("diner@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Email != "diner@example.com" {
		t.Errorf("email = %q, want diner@example.com", claims.Email)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 || ttl > TokenTTL {
		t.Errorf("expiry %v outside (0, %v]", ttl, TokenTTL)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := generateToken("diner@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("diner@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Flip a character in the signature segment.
	i := strings.LastIndex(token, ".")
	sig := []byte(token[i+1:])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	if _, err := ValidateToken(token[:i+1] + string(sig)); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("expected malformed token to be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "s3cret!") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
