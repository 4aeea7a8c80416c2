package helpers

import (
	"errors"
	"testing"
	"time"

	"github.com/wiratama/expense-tracker-api/internal/domain/entity"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate("user-123", entity.RoleAdmin)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, want user-123", claims.UserID)
	}
	if claims.UserType != entity.RoleAdmin {
		t.Errorf("UserType = %q, want admin", claims.UserType)
	}
}

func TestParseExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, err := m.Generate("user-123", entity.RoleUser)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := m.Parse(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Parse = %v, want ErrTokenExpired", err)
	}
}

func TestParseWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)

	token, err := issuer.Generate("user-123", entity.RoleUser)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := verifier.Parse(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Parse = %v, want ErrTokenInvalid", err)
	}
}

func TestParseGarbage(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	if _, err := m.Parse("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Parse = %v, want ErrTokenInvalid", err)
	}
}

func TestDefaultTTL(t *testing.T) {
	m := NewJWTManager("test-secret", 0)
	token, err := m.Generate("user-123", entity.RoleUser)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != DefaultTokenTTL {
		t.Errorf("token lifetime = %v, want %v", lifetime, DefaultTokenTTL)
	}
}
