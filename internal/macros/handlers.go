package macros

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	lbsPerKg  = 2.20462
	cmPerInch = 2.54
)

// CalculateRequest is the HTTP payload for a macro calculation. Weight and
// height are interpreted per UnitSystem: "metric" (kg/cm, default) or
// "imperial" (lbs/inches, converted at this boundary — the calculator is
// metric-only).
type CalculateRequest struct {
	Age                 int     `json:"age"`
	Sex                 string  `json:"sex,omitempty"`
	Height              float64 `json:"height"`
	Weight              float64 `json:"weight"`
	UnitSystem          string  `json:"unit_system,omitempty"`
	ActivityLevel       string  `json:"activity_level"`
	Goal                string  `json:"goal"`
	TrainingDaysPerWeek int     `json:"training_days_per_week"`
}

// Validate performs the bounds checking the calculator itself deliberately
// skips.
func (r CalculateRequest) Validate() error {
	if r.Age <= 0 || r.Age > 130 {
		return fmt.Errorf("age must be 1-130")
	}
	if r.Height <= 0 {
		return fmt.Errorf("height must be positive")
	}
	if r.Weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	if r.TrainingDaysPerWeek < 0 || r.TrainingDaysPerWeek > 7 {
		return fmt.Errorf("training_days_per_week must be 0-7")
	}
	switch r.UnitSystem {
	case "", "metric", "imperial":
	default:
		return fmt.Errorf("unit_system must be metric or imperial")
	}
	return nil
}

// Stats converts the request into calculator input, applying the imperial
// conversion when needed.
func (r CalculateRequest) Stats() (UserStats, error) {
	if err := r.Validate(); err != nil {
		return UserStats{}, err
	}

	sex, err := ParseSex(r.Sex)
	if err != nil {
		return UserStats{}, err
	}
	level, err := ParseActivityLevel(r.ActivityLevel)
	if err != nil {
		return UserStats{}, err
	}
	goal, err := ParseGoal(r.Goal)
	if err != nil {
		return UserStats{}, err
	}

	weightKg := r.Weight
	heightCm := r.Height
	if r.UnitSystem == "imperial" {
		weightKg = r.Weight / lbsPerKg
		heightCm = r.Height * cmPerInch
	}

	return UserStats{
		Age:                 r.Age,
		HeightCm:            heightCm,
		WeightKg:            weightKg,
		Sex:                 sex,
		ActivityLevel:       level,
		Goal:                goal,
		TrainingDaysPerWeek: r.TrainingDaysPerWeek,
	}, nil
}

// Handler handles HTTP requests for macro calculations.
type Handler struct{}

// NewHandler creates a new macros handler.
func NewHandler() *Handler {
	return &Handler{}
}

// HandleCalculate handles POST /v1/macros/calculate
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid request body")
		return
	}

	stats, err := req.Stats()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	plan := Calculate(stats)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(plan)
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
