package token

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	tok, err := Issue("652f1a2b3c4d5e6f70819203", "user-secret")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	id, err := Verify(tok, "user-secret")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id != "652f1a2b3c4d5e6f70819203" {
		t.Fatalf("unexpected subject id: %s", id)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	tok, err := Issue("abc123", "user-secret")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := Verify(tok, "admin-secret"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	if _, err := Verify("not-a-token", "secret"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := Verify("", "secret"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}

func TestVerify_WrongSigningMethod(t *testing.T) {
	// A token signed with "none" must be rejected even with a matching secret.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": "abc123"})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := Verify(tok, "secret"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_MissingIDClaim(t *testing.T) {
	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "abc123"})
	tok, err := signed.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := Verify(tok, "secret"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssue_NoExpiry(t *testing.T) {
	tok, err := Issue("abc123", "secret")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := claims["exp"]; ok {
		t.Fatalf("token must not carry an exp claim")
	}
}
