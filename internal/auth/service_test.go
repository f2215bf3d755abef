package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/rsantiago76/BetterMe-sub000/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		JWTIssuer:     "fuelplan-api",
		JWTTTLMinutes: 60,
	}
}

func TestGenerateAndVerifyJWT(t *testing.T) {
	service := NewService(testConfig())

	token, err := service.GenerateJWT("user-42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userID, err := service.VerifyJWT(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-42" {
		t.Errorf("expected user-42, got %q", userID)
	}
}

func TestVerifyJWTExpired(t *testing.T) {
	service := NewService(testConfig())

	token, err := service.GenerateJWTWithTTL("user-42", -time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.VerifyJWT(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyJWTWrongSecret(t *testing.T) {
	service := NewService(testConfig())

	other := testConfig()
	other.JWTSecret = "other-secret"
	token, err := NewService(other).GenerateJWT("user-42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.VerifyJWT(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyJWTWrongIssuer(t *testing.T) {
	service := NewService(testConfig())

	other := testConfig()
	other.JWTIssuer = "someone-else"
	token, err := NewService(other).GenerateJWT("user-42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.VerifyJWT(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyJWTGarbage(t *testing.T) {
	service := NewService(testConfig())

	if _, err := service.VerifyJWT("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
