package mealprep

import (
	"fmt"
	"strings"

	"github.com/rsantiago76/BetterMe-sub000/internal/catalog"
)

// DayOfWeek is one of the 7 fixed calendar days. Week order starts Monday.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// weekDays is the canonical iteration order for every generation pass.
var weekDays = [7]DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseDay converts a lowercase English day name into a DayOfWeek.
func ParseDay(s string) (DayOfWeek, error) {
	d := DayOfWeek(strings.ToLower(strings.TrimSpace(s)))
	for _, day := range weekDays {
		if d == day {
			return day, nil
		}
	}
	return "", fmt.Errorf("invalid day of week %q", s)
}

// TimeBucket is the coarse time-of-day a shake slot belongs to.
type TimeBucket string

const (
	BucketMorning     TimeBucket = "morning"
	BucketPostWorkout TimeBucket = "post_workout"
	BucketEvening     TimeBucket = "evening"
)

// ShakeSlot is one shake assignment within a day.
type ShakeSlot struct {
	Bucket    TimeBucket           `json:"bucket"`
	TimeLabel string               `json:"time_label"`
	Shake     *catalog.ShakeRecord `json:"shake"`
	Notes     string               `json:"notes,omitempty"`
}

// DayPlan is the schedule for a single day of the week.
type DayPlan struct {
	Day           DayOfWeek   `json:"day"`
	IsTrainingDay bool        `json:"is_training_day"`
	Slots         []ShakeSlot `json:"slots"`
}

// WeeklyPlan owns exactly 7 DayPlans, Monday through Sunday.
// TrainingDays + RestDays always equals 7.
type WeeklyPlan struct {
	Days         []DayPlan `json:"days"`
	TotalShakes  int       `json:"total_shakes"`
	TrainingDays int       `json:"training_days"`
	RestDays     int       `json:"rest_days"`
}

// ShoppingListItem is one aggregated ingredient line. Amounts for the same
// (case-insensitive) ingredient name are summed assuming a uniform unit;
// there is no unit conversion.
type ShoppingListItem struct {
	Name        string  `json:"name"`
	TotalAmount float64 `json:"total_amount"`
	Unit        string  `json:"unit"`
	Servings    int     `json:"servings"`
	Note        string  `json:"note,omitempty"`
}

// CategoryGroup is a display grouping of shopping list items.
type CategoryGroup struct {
	Category string             `json:"category"`
	Items    []ShoppingListItem `json:"items"`
}

// NutritionTotals sums macros across every scheduled shake of the week.
// Daily averages are the weekly totals divided by 7 and rounded, regardless
// of the actual day-by-day spread.
type NutritionTotals struct {
	WeeklyCalories   int `json:"weekly_calories"`
	WeeklyProteinG   int `json:"weekly_protein_g"`
	WeeklyCarbsG     int `json:"weekly_carbs_g"`
	WeeklyFatG       int `json:"weekly_fat_g"`
	DailyAvgCalories int `json:"daily_avg_calories"`
	DailyAvgProteinG int `json:"daily_avg_protein_g"`
	DailyAvgCarbsG   int `json:"daily_avg_carbs_g"`
	DailyAvgFatG     int `json:"daily_avg_fat_g"`
}
