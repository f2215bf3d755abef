package mealprep

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/rsantiago76/BetterMe-sub000/internal/auth"
	"github.com/rsantiago76/BetterMe-sub000/internal/storage"
)

// Handler handles HTTP requests for weekly plans.
type Handler struct {
	service *Service
}

// NewHandler creates a new meal-prep handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PreviewRequest is the payload for POST /v1/plans/preview.
type PreviewRequest struct {
	TrainingDays []string `json:"training_days"`
}

// CreatePlanRequest is the payload for POST /v1/plans.
type CreatePlanRequest struct {
	Name         string   `json:"name"`
	TrainingDays []string `json:"training_days"`
}

// ListPlansResponse is the payload for GET /v1/plans.
type ListPlansResponse struct {
	Plans []SavedPlanSummary `json:"plans"`
}

// HandlePreview handles POST /v1/plans/preview
func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid request body")
		return
	}

	doc, err := h.service.Preview(req.TrainingDays)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// HandleCreate handles POST /v1/plans
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid request body")
		return
	}

	plan, err := h.service.Create(r.Context(), auth.OwnerUserID(r.Context()), req.Name, req.TrainingDays)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, plan)
}

// HandleList handles GET /v1/plans
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	plans, err := h.service.List(r.Context(), auth.OwnerUserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to list plans")
		return
	}
	if plans == nil {
		plans = []SavedPlanSummary{}
	}

	writeJSON(w, http.StatusOK, ListPlansResponse{Plans: plans})
}

// HandleGet handles GET /v1/plans/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid plan id")
		return
	}

	plan, err := h.service.Get(r.Context(), auth.OwnerUserID(r.Context()), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "plan_not_found", "Plan not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to get plan")
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// HandleDelete handles DELETE /v1/plans/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid plan id")
		return
	}

	err = h.service.Delete(r.Context(), auth.OwnerUserID(r.Context()), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "plan_not_found", "Plan not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to delete plan")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response in the standard format.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
