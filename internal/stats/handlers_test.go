package stats

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rsantiago76/BetterMe-sub000/internal/macros"
	"github.com/rsantiago76/BetterMe-sub000/internal/storage/memory"
)

func TestHandlePutAndGet(t *testing.T) {
	handler := NewHandler(NewService(memory.New()))

	stats := macros.CalculateRequest{
		Age: 25, Sex: "male", Height: 175, Weight: 75,
		ActivityLevel: "moderate", Goal: "maintain", TrainingDaysPerWeek: 3,
	}

	body, _ := json.Marshal(stats)
	putReq := httptest.NewRequest("PUT", "/v1/stats", bytes.NewReader(body))
	putW := httptest.NewRecorder()

	handler.HandlePut(putW, putReq)

	if putW.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", putW.Code)
	}

	getReq := httptest.NewRequest("GET", "/v1/stats", nil)
	getW := httptest.NewRecorder()

	handler.HandleGet(getW, getReq)

	if getW.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", getW.Code)
	}

	var dto StatsDTO
	json.NewDecoder(getW.Body).Decode(&dto)

	if dto.Stats.Age != 25 || dto.Stats.Weight != 75 {
		t.Errorf("stored stats round-trip mismatch: %+v", dto.Stats)
	}
	if dto.UpdatedAt.IsZero() {
		t.Error("expected updated_at set")
	}

	// The stored document replays against the calculator unchanged.
	if _, err := dto.Stats.Stats(); err != nil {
		t.Errorf("stored stats no longer valid: %v", err)
	}
}

func TestHandleGetNotFound(t *testing.T) {
	handler := NewHandler(NewService(memory.New()))

	req := httptest.NewRequest("GET", "/v1/stats", nil)
	w := httptest.NewRecorder()

	handler.HandleGet(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestHandlePutRejectsInvalidStats(t *testing.T) {
	handler := NewHandler(NewService(memory.New()))

	body, _ := json.Marshal(macros.CalculateRequest{
		Age: 0, Height: 175, Weight: 75,
		ActivityLevel: "moderate", Goal: "maintain",
	})
	req := httptest.NewRequest("PUT", "/v1/stats", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandlePut(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
