package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Handler handles HTTP requests for the shake catalog.
type Handler struct{}

// NewHandler creates a new catalog handler.
func NewHandler() *Handler {
	return &Handler{}
}

// ListShakesResponse is the payload for GET /v1/shakes.
type ListShakesResponse struct {
	Shakes []*ShakeRecord `json:"shakes"`
}

// HandleList handles GET /v1/shakes with optional filters:
// goal_tag, time_of_day, exclude_allergen, max_calories, min_protein.
// Filters compose left to right; an empty result is a normal response.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	records := All()

	if tag := q.Get("goal_tag"); tag != "" {
		records = filter(records, func(s *ShakeRecord) bool { return s.HasGoalTag(tag) })
	}
	if tod := q.Get("time_of_day"); tod != "" {
		byTime := GetByTimeOfDay(tod)
		allowed := make(map[string]bool, len(byTime))
		for _, s := range byTime {
			allowed[s.ID] = true
		}
		records = filter(records, func(s *ShakeRecord) bool { return allowed[s.ID] })
	}
	if allergen := q.Get("exclude_allergen"); allergen != "" {
		records = filter(records, func(s *ShakeRecord) bool { return !s.HasAllergen(allergen) })
	}
	if raw := q.Get("max_calories"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "max_calories must be an integer")
			return
		}
		records = filter(records, func(s *ShakeRecord) bool { return s.Macros.Calories <= limit })
	}
	if raw := q.Get("min_protein"); raw != "" {
		floor, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "min_protein must be an integer")
			return
		}
		records = filter(records, func(s *ShakeRecord) bool { return s.Macros.ProteinG >= floor })
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListShakesResponse{Shakes: records})
}

// HandleGet handles GET /v1/shakes/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	record := GetByID(r.PathValue("id"))
	if record == nil {
		writeError(w, http.StatusNotFound, "shake_not_found", "Shake not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(record)
}

func filter(records []*ShakeRecord, keep func(*ShakeRecord) bool) []*ShakeRecord {
	out := records[:0:0]
	for _, s := range records {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
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
