package suppsched

import (
	"encoding/json"
	"net/http"
)

// Handler handles HTTP requests for supplement schedules.
type Handler struct{}

// NewHandler creates a new supplement schedule handler.
func NewHandler() *Handler {
	return &Handler{}
}

// ListSupplementsResponse is the payload for GET /v1/supplements.
type ListSupplementsResponse struct {
	Supplements []TimingRule `json:"supplements"`
}

// HandleList handles GET /v1/supplements
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListSupplementsResponse{Supplements: Rules()})
}

// HandleSchedule handles POST /v1/supplements/schedule
func (h *Handler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	var req UserSchedule
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid request body")
		return
	}

	result, err := BuildSchedule(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
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
