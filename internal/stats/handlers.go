package stats

import (
	"encoding/json"
	"net/http"

	"github.com/rsantiago76/BetterMe-sub000/internal/auth"
	"github.com/rsantiago76/BetterMe-sub000/internal/macros"
)

// Handler handles HTTP requests for persisted user stats.
type Handler struct {
	service *Service
}

// NewHandler creates a new stats handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandlePut handles PUT /v1/stats
func (h *Handler) HandlePut(w http.ResponseWriter, r *http.Request) {
	var req macros.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid request body")
		return
	}

	if err := h.service.Upsert(r.Context(), auth.OwnerUserID(r.Context()), req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGet handles GET /v1/stats
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	dto, found, err := h.service.Get(r.Context(), auth.OwnerUserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to get stats")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "stats_not_found", "No stats saved yet")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(dto)
}

// writeError writes an error response in the standard format.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
