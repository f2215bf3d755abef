package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleDevAuth(t *testing.T) {
	service := NewService(testConfig())
	handlers := NewHandlers(service)

	req := httptest.NewRequest("POST", "/v1/auth/dev", nil)
	w := httptest.NewRecorder()

	handlers.HandleDevAuth(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp DevAuthResponse
	json.NewDecoder(w.Body).Decode(&resp)

	if resp.TokenType != "Bearer" {
		t.Errorf("expected Bearer token type, got %q", resp.TokenType)
	}
	if resp.ExpiresIn != 30*24*3600 {
		t.Errorf("expected 30-day expiry, got %d", resp.ExpiresIn)
	}

	// The issued token verifies against the same service.
	userID, err := service.VerifyJWT(resp.AccessToken)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if userID != "dev-user" {
		t.Errorf("expected dev-user subject, got %q", userID)
	}
}
