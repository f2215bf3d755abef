package suppsched

import (
	"sort"
	"testing"
)

func TestBuildScheduleFullDay(t *testing.T) {
	// Wake 06:00, train 17:00, bed 22:00.
	result, err := BuildSchedule(UserSchedule{
		WakeTime:     "06:00",
		TrainingTime: "17:00",
		BedTime:      "22:00",
		Supplements:  []string{"caffeine", "creatine", "vitamin_d3", "magnesium"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(result.Items))
	}

	byID := make(map[string]ScheduledSupplement, len(result.Items))
	for _, item := range result.Items {
		byID[item.SupplementID] = item
	}

	cases := []struct{ id, time string }{
		{"vitamin_d3", "06:30"},
		{"caffeine", "16:15"},
		{"creatine", "17:15"},
		{"magnesium", "21:30"},
	}
	for _, c := range cases {
		item, ok := byID[c.id]
		if !ok {
			t.Errorf("missing %s in schedule", c.id)
			continue
		}
		if item.Time != c.time {
			t.Errorf("%s at %s, want %s", c.id, item.Time, c.time)
		}
	}

	// Caffeine at 16:15 crosses the 16:00 cutoff and carries a warning.
	if byID["caffeine"].Warning == "" {
		t.Error("expected a late-caffeine warning at 16:15")
	}
	if byID["creatine"].Warning != "" {
		t.Errorf("unexpected warning on creatine: %q", byID["creatine"].Warning)
	}

	// Items sorted from the wake anchor forward.
	sorted := sort.SliceIsSorted(result.Items, func(i, j int) bool {
		return result.Items[i].TimeMinutes < result.Items[j].TimeMinutes
	})
	if !sorted {
		t.Error("expected items sorted by time for a daytime schedule")
	}

	// Groups: morning, training window, evening — no midday entries.
	wantGroups := []string{"Morning (Wake Up)", "Training Window", "Evening (Bedtime)"}
	if len(result.Groups) != len(wantGroups) {
		t.Fatalf("expected %d groups, got %d", len(wantGroups), len(result.Groups))
	}
	for i, label := range wantGroups {
		if result.Groups[i].Label != label {
			t.Errorf("group %d = %q, want %q", i, result.Groups[i].Label, label)
		}
	}
}

func TestBuildScheduleNoWarningBeforeCutoff(t *testing.T) {
	// Training at 15:00 puts caffeine at 14:15, before the cutoff.
	result, err := BuildSchedule(UserSchedule{
		WakeTime:     "06:00",
		TrainingTime: "15:00",
		BedTime:      "22:00",
		Supplements:  []string{"caffeine"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Items[0].Time != "14:15" {
		t.Errorf("caffeine at %s, want 14:15", result.Items[0].Time)
	}
	if result.Items[0].Warning != "" {
		t.Errorf("unexpected warning: %q", result.Items[0].Warning)
	}
}

func TestBuildScheduleMiddayAndWithMeal(t *testing.T) {
	result, err := BuildSchedule(UserSchedule{
		WakeTime:     "07:00",
		TrainingTime: "18:00",
		BedTime:      "23:00",
		Supplements:  []string{"multivitamin", "electrolytes"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byID := make(map[string]ScheduledSupplement, len(result.Items))
	for _, item := range result.Items {
		byID[item.SupplementID] = item
	}

	// with_meal anchors to wake + 30 as a breakfast proxy.
	if byID["multivitamin"].Time != "07:30" {
		t.Errorf("multivitamin at %s, want 07:30", byID["multivitamin"].Time)
	}
	if !byID["multivitamin"].WithFood {
		t.Error("expected multivitamin flagged with_food")
	}

	// midday is the wake/bed midpoint: (420 + 1380) / 2 = 15:00.
	if byID["electrolytes"].Time != "15:00" {
		t.Errorf("electrolytes at %s, want 15:00", byID["electrolytes"].Time)
	}
}

func TestBuildScheduleMidnightWraparound(t *testing.T) {
	// Bed just after midnight: magnesium at 00:15 - 30 wraps to 23:45.
	result, err := BuildSchedule(UserSchedule{
		WakeTime:     "08:00",
		TrainingTime: "18:00",
		BedTime:      "00:15",
		Supplements:  []string{"magnesium"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Items[0].Time != "23:45" {
		t.Errorf("magnesium at %s, want 23:45", result.Items[0].Time)
	}
	if result.Items[0].TimeMinutes != 1425 {
		t.Errorf("magnesium minutes = %d, want 1425", result.Items[0].TimeMinutes)
	}
}

func TestBuildScheduleNightShiftSort(t *testing.T) {
	// Wake after noon: pre-noon times sort as next-day so the schedule reads
	// forward from waking, not from midnight.
	result, err := BuildSchedule(UserSchedule{
		WakeTime:     "14:00",
		TrainingTime: "20:00",
		BedTime:      "04:00",
		Supplements:  []string{"melatonin", "vitamin_d3"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.Items[0].SupplementID != "vitamin_d3" {
		t.Errorf("first item = %s, want vitamin_d3 (14:30)", result.Items[0].SupplementID)
	}
	if result.Items[1].SupplementID != "melatonin" {
		t.Errorf("second item = %s, want melatonin (03:30)", result.Items[1].SupplementID)
	}
	if result.Items[1].Time != "03:30" {
		t.Errorf("melatonin at %s, want 03:30", result.Items[1].Time)
	}
}

func TestBuildScheduleSkipsUnknownIDs(t *testing.T) {
	result, err := BuildSchedule(UserSchedule{
		WakeTime:     "06:00",
		TrainingTime: "17:00",
		BedTime:      "22:00",
		Supplements:  []string{"creatine", "unobtainium", "creatine_hcl"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Items) != 1 {
		t.Fatalf("expected unknown ids skipped, got %d items", len(result.Items))
	}
	if result.Items[0].SupplementID != "creatine" {
		t.Errorf("kept %s, want creatine", result.Items[0].SupplementID)
	}
}

func TestBuildScheduleInvalidTimes(t *testing.T) {
	cases := []UserSchedule{
		{WakeTime: "25:00", TrainingTime: "17:00", BedTime: "22:00"},
		{WakeTime: "06:00", TrainingTime: "late", BedTime: "22:00"},
		{WakeTime: "06:00", TrainingTime: "17:00", BedTime: ""},
	}

	for _, c := range cases {
		if _, err := BuildSchedule(c); err == nil {
			t.Errorf("expected error for %+v", c)
		}
	}
}

func TestBuildScheduleEmptySelection(t *testing.T) {
	result, err := BuildSchedule(UserSchedule{
		WakeTime:     "06:00",
		TrainingTime: "17:00",
		BedTime:      "22:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Items) != 0 {
		t.Errorf("expected no items, got %d", len(result.Items))
	}
	if len(result.Groups) != 0 {
		t.Errorf("expected no groups, got %d", len(result.Groups))
	}
}

func TestRules(t *testing.T) {
	rules := Rules()
	if len(rules) == 0 {
		t.Fatal("expected a non-empty timing table")
	}

	// Returned slice is a copy; mutating it must not affect the table.
	original := rules[0].Name
	rules[0].Name = "mutated"
	if fresh := Rules(); fresh[0].Name != original {
		t.Error("Rules() exposed internal state")
	}

	if _, ok := RuleFor("caffeine"); !ok {
		t.Error("expected a caffeine rule")
	}
	if _, ok := RuleFor("unknown"); ok {
		t.Error("expected no rule for unknown id")
	}
}
