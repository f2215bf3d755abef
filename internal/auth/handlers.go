package auth

import (
	"encoding/json"
	"net/http"
	"time"
)

// DevAuthResponse is the payload for POST /v1/auth/dev.
type DevAuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Handlers exposes the auth HTTP endpoints.
type Handlers struct {
	service *Service
}

func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleDevAuth handles POST /v1/auth/dev — a local development token
// without any identity provider. 30-day TTL.
func (h *Handlers) HandleDevAuth(w http.ResponseWriter, r *http.Request) {
	const devUserID = "dev-user"
	const devTTL = 30 * 24 * time.Hour

	accessToken, err := h.service.GenerateJWTWithTTL(devUserID, devTTL)
	if err != nil {
		writeAuthError(w, http.StatusInternalServerError, "internal_error", "Failed to generate token")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(DevAuthResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(devTTL.Seconds()),
	})
}
