package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rsantiago76/BetterMe-sub000/internal/config"
	"github.com/rsantiago76/BetterMe-sub000/internal/mealprep"
)

func testServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Env:           "local",
		Port:          0,
		JWTSecret:     "test-secret",
		JWTIssuer:     "fuelplan-api",
		JWTTTLMinutes: 60,
		Blob: config.BlobConfig{
			Mode:     config.BlobModeLocal,
			LocalDir: t.TempDir(),
		},
	}

	server := New(cfg)
	t.Cleanup(func() { server.Close() })
	return server.Handler()
}

func TestHealthz(t *testing.T) {
	handler := testServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	json.NewDecoder(w.Body).Decode(&resp)
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %q", resp["status"])
	}
}

func TestShakesRoute(t *testing.T) {
	handler := testServer(t)

	req := httptest.NewRequest("GET", "/v1/shakes", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

func TestMacrosRoute(t *testing.T) {
	handler := testServer(t)

	body := []byte(`{"age":25,"sex":"male","height":175,"weight":75,"activity_level":"moderate","goal":"maintain","training_days_per_week":3}`)
	req := httptest.NewRequest("POST", "/v1/macros/calculate", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var plan struct {
		TDEE int `json:"tdee"`
	}
	json.NewDecoder(w.Body).Decode(&plan)
	if plan.TDEE != 2672 {
		t.Errorf("TDEE = %d, want 2672", plan.TDEE)
	}
}

func TestPlanLifecycleThroughRouter(t *testing.T) {
	handler := testServer(t)

	// Create.
	body := []byte(`{"name":"Full Body 3x","training_days":["monday","wednesday","friday"]}`)
	req := httptest.NewRequest("POST", "/v1/plans", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected status 201, got %d", w.Code)
	}

	var created mealprep.SavedPlanDTO
	json.NewDecoder(w.Body).Decode(&created)

	// List shows it.
	req = httptest.NewRequest("GET", "/v1/plans", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("list: expected status 200, got %d", w.Code)
	}
	var list mealprep.ListPlansResponse
	json.NewDecoder(w.Body).Decode(&list)
	if len(list.Plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(list.Plans))
	}

	// Export the shopping list report.
	req = httptest.NewRequest("GET", "/v1/plans/"+created.ID.String()+"/report", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("report: expected status 200, got %d", w.Code)
	}
	var report struct {
		Key       string `json:"key"`
		URL       string `json:"url"`
		SizeBytes int64  `json:"size_bytes"`
	}
	json.NewDecoder(w.Body).Decode(&report)
	if report.SizeBytes == 0 {
		t.Error("expected a non-empty PDF report")
	}
	if report.URL == "" {
		t.Error("expected a download URL")
	}

	// Delete.
	req = httptest.NewRequest("DELETE", "/v1/plans/"+created.ID.String(), nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected status 204, got %d", w.Code)
	}

	// Gone afterwards.
	req = httptest.NewRequest("GET", "/v1/plans/"+created.ID.String(), nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete: expected status 404, got %d", w.Code)
	}
}

func TestSupplementsRoute(t *testing.T) {
	handler := testServer(t)

	body := []byte(`{"wake_time":"06:00","training_time":"17:00","bed_time":"22:00","supplements":["caffeine","magnesium"]}`)
	req := httptest.NewRequest("POST", "/v1/supplements/schedule", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestDevAuthRoute(t *testing.T) {
	handler := testServer(t)

	req := httptest.NewRequest("POST", "/v1/auth/dev", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.AccessToken == "" {
		t.Error("expected an access token")
	}
}
