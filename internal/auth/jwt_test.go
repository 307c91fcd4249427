package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "langarsewa-test", time.Hour)

	token, err := svc.GenerateToken(42, "Asha Verma", true)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.RollNo != 42 || claims.Name != "Asha Verma" || !claims.IsAdmin {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateRejectsWrongKey(t *testing.T) {
	svc := NewJWTService("test-secret", "langarsewa-test", time.Hour)
	other := NewJWTService("other-secret", "langarsewa-test", time.Hour)

	token, err := svc.GenerateToken(1, "", false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with a different key validated")
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", "langarsewa-test", -time.Minute)

	token, err := svc.GenerateToken(1, "", false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("expired token validated")
	}
}
