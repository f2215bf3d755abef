package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rsantiago76/BetterMe-sub000/internal/mealprep"
)

func TestGeneratePDF(t *testing.T) {
	doc := mealprep.BuildPlanDocument([]mealprep.DayOfWeek{
		mealprep.Monday, mealprep.Wednesday, mealprep.Friday,
	})

	plan := &mealprep.SavedPlanDTO{
		ID:           uuid.New(),
		Name:         "Full Body 3x",
		TrainingDays: []string{"monday", "wednesday", "friday"},
		Document:     doc,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	data, err := GeneratePDF(plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with the PDF magic: %q", data[:8])
	}
}

func TestGeneratePDFEmptyWeek(t *testing.T) {
	plan := &mealprep.SavedPlanDTO{
		ID:       uuid.New(),
		Name:     "Rest Week",
		Document: mealprep.BuildPlanDocument(nil),
	}

	data, err := GeneratePDF(plan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty PDF output for an all-rest week")
	}
}
