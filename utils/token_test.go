package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignedTokenRoundTrip(t *testing.T) {
	secret := "test-secret"

	tokenString, err := SignedToken(secret, "a@example.com", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := &SignedDetails{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("expected valid token, got err=%v valid=%v", err, token != nil && token.Valid)
	}

	if claims.Email != "a@example.com" {
		t.Errorf("expected email claim, got %q", claims.Email)
	}
	if claims.Username != "alice" {
		t.Errorf("expected username claim, got %q", claims.Username)
	}
	if claims.ExpiresAt == nil {
		t.Error("expected an expiry claim")
	}
}

func TestSignedTokenWrongSecret(t *testing.T) {
	tokenString, err := SignedToken("right-secret", "a@example.com", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = jwt.ParseWithClaims(tokenString, &SignedDetails{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil {
		t.Error("expected signature verification to fail")
	}
}
