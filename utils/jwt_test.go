package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRY", "1h")

	merchantID := uuid.Must(uuid.NewV7())
	token, err := GenerateJWT(merchantID, "owner@demo.test", "Demo Owner")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT failed: %v", err)
	}
	if claims.MerchantID != merchantID.String() {
		t.Fatalf("merchant id mismatch: got %s, want %s", claims.MerchantID, merchantID)
	}
	if claims.Email != "owner@demo.test" {
		t.Fatalf("email mismatch: %s", claims.Email)
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("token already expired")
	}
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateJWT(uuid.Must(uuid.NewV7()), "owner@demo.test", "Demo Owner")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := ValidateJWT(token); err == nil {
		t.Fatalf("expected validation to fail with a different secret")
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Fatalf("expected validation to fail")
	}
}
