package macros

import (
	"fmt"

	"github.com/rsantiago76/BetterMe-sub000/internal/catalog"
)

// Sex is the biological sex used by the Mifflin-St Jeor offset. It is
// optional on input; nil means the sex-neutral offset is applied.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityLevel selects the TDEE multiplier.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityHigh      ActivityLevel = "high"
	ActivityVeryHigh  ActivityLevel = "very_high"
)

// Goal selects the calorie adjustment and protein target.
type Goal string

const (
	GoalBulk     Goal = "bulk"
	GoalCut      Goal = "cut"
	GoalMaintain Goal = "maintain"
)

// UserStats is the calculator input. The calculator itself performs no
// bounds checking; callers validate before invoking (see
// CalculateRequest.Validate in handlers.go for the HTTP boundary).
type UserStats struct {
	Age                 int
	HeightCm            float64
	WeightKg            float64
	Sex                 *Sex
	ActivityLevel       ActivityLevel
	Goal                Goal
	TrainingDaysPerWeek int
}

// MacroTargets is the daily macro breakdown. Carbs absorb all rounding
// residue, so protein*4 + carbs*4 + fat*9 stays within ±1 of calories.
// Carbs are intentionally NOT clamped at zero for extreme inputs.
type MacroTargets struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// MealTiming is one daypart slot of the daily distribution. Per-slot macro
// grams are rounded independently and do not sum exactly to the daily
// targets; that approximation is part of the contract.
type MealTiming struct {
	Name             string               `json:"name"`
	TimeOfDay        string               `json:"time_of_day"`
	PercentCalories  int                  `json:"percent_calories"`
	Calories         int                  `json:"calories"`
	ProteinG         int                  `json:"protein_g"`
	CarbsG           int                  `json:"carbs_g"`
	FatG             int                  `json:"fat_g"`
	Notes            string               `json:"notes,omitempty"`
	RecommendedShake *catalog.ShakeRecord `json:"recommended_shake,omitempty"`
}

// CalorieRange is the full goal adjustment range around TDEE, surfaced for
// user-facing guidance.
type CalorieRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Recommendations is the advisory block attached to every plan.
type Recommendations struct {
	ProteinPerKg      float64      `json:"protein_per_kg"`
	WaterLitersPerDay float64      `json:"water_liters_per_day"`
	CalorieRange      CalorieRange `json:"calorie_range"`
}

// Plan is the full calculator output for one UserStats input.
type Plan struct {
	BMR             float64         `json:"bmr"`
	TDEE            int             `json:"tdee"`
	Targets         MacroTargets    `json:"targets"`
	Meals           []MealTiming    `json:"meals"`
	Recommendations Recommendations `json:"recommendations"`
}

// ParseSex converts an API string into a Sex pointer; empty means
// unspecified.
func ParseSex(s string) (*Sex, error) {
	switch Sex(s) {
	case SexMale, SexFemale:
		sex := Sex(s)
		return &sex, nil
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("invalid sex %q", s)
	}
}

// ParseActivityLevel validates an API activity level string.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	level := ActivityLevel(s)
	if _, ok := activityMultipliers[level]; !ok {
		return "", fmt.Errorf("invalid activity_level %q", s)
	}
	return level, nil
}

// ParseGoal validates an API goal string.
func ParseGoal(s string) (Goal, error) {
	goal := Goal(s)
	if _, ok := goalAdjustments[goal]; !ok {
		return "", fmt.Errorf("invalid goal %q", s)
	}
	return goal, nil
}
