// Package macros turns a user's stats into a full day of calorie and macro
// targets: Mifflin-St Jeor BMR, activity-scaled TDEE, a goal-adjusted
// calorie target, a protein/fat/carb split, and a per-meal distribution with
// shake recommendations from the catalog.
package macros

import (
	"math"

	"github.com/rsantiago76/BetterMe-sub000/internal/catalog"
)

// activityMultipliers maps activity level to the TDEE multiplier. Also the
// source of truth for valid levels (see ParseActivityLevel).
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityHigh:      1.725,
	ActivityVeryHigh:  1.9,
}

type intRange struct {
	min, max int
}

type floatRange struct {
	min, max float64
}

// goalAdjustments is the calorie delta range applied on top of TDEE per
// goal. The midpoint is used for the single target; the full range is
// surfaced in Recommendations.
var goalAdjustments = map[Goal]intRange{
	GoalBulk:     {min: 250, max: 400},
	GoalCut:      {min: -500, max: -250},
	GoalMaintain: {min: 0, max: 0},
}

// proteinTargets is the protein g/kg range per goal. Cut is higher than bulk
// to preserve lean mass under a deficit.
var proteinTargets = map[Goal]floatRange{
	GoalBulk:     {min: 1.8, max: 2.2},
	GoalCut:      {min: 2.0, max: 2.4},
	GoalMaintain: {min: 1.6, max: 2.0},
}

// Mifflin-St Jeor sex offsets. The unspecified offset is the midpoint of
// the male and female constants.
const (
	sexOffsetMale        = 5
	sexOffsetFemale      = -161
	sexOffsetUnspecified = -78
)

const fatCalorieShare = 0.25

// CalculateBMR computes basal metabolic rate via Mifflin-St Jeor:
// 10*kg + 6.25*cm - 5*age + sex offset. The result is left unrounded;
// rounding happens at the report boundary.
func CalculateBMR(stats UserStats) float64 {
	offset := float64(sexOffsetUnspecified)
	if stats.Sex != nil {
		switch *stats.Sex {
		case SexMale:
			offset = sexOffsetMale
		case SexFemale:
			offset = sexOffsetFemale
		}
	}
	return 10*stats.WeightKg + 6.25*stats.HeightCm - 5*float64(stats.Age) + offset
}

// CalculateTDEE scales a BMR by the activity multiplier and rounds to the
// nearest calorie.
func CalculateTDEE(bmr float64, level ActivityLevel) int {
	return int(math.Round(bmr * activityMultipliers[level]))
}

// CalculateTargets derives the daily macro targets from TDEE. Protein is
// fixed from body weight, fat takes 25% of adjusted calories, and carbs are
// the residual — which means carbs absorb all rounding error and can go
// negative for extreme inputs. That is deliberate: the caller sees the
// arithmetic truth instead of a silently clamped value.
func CalculateTargets(stats UserStats, tdee int) MacroTargets {
	adj := goalAdjustments[stats.Goal]
	adjustment := int(math.Round(float64(adj.min+adj.max) / 2))
	calories := tdee + adjustment

	protein := proteinTargets[stats.Goal]
	proteinG := int(math.Round(stats.WeightKg * midpoint(protein)))

	fatCalories := float64(calories) * fatCalorieShare
	fatG := int(math.Round(fatCalories / 9))

	carbsG := int(math.Round(float64(calories-proteinG*4-fatG*9) / 4))

	return MacroTargets{
		Calories: calories,
		ProteinG: proteinG,
		CarbsG:   carbsG,
		FatG:     fatG,
	}
}

// mealSlot is one row of the fixed daypart distribution table.
type mealSlot struct {
	name       string
	timeOfDay  string
	percent    float64
	proteinX   float64
	carbsX     float64
	fatX       float64
	notes      string
	includedIf func(stats UserStats) bool
	recommend  func(goal Goal) *catalog.ShakeRecord
}

var mealSlots = []mealSlot{
	{
		name:      "Breakfast",
		timeOfDay: "Within 1 hour of waking",
		percent:   0.22,
		proteinX:  1, carbsX: 1, fatX: 1,
		notes:     "Set the day up with protein and slow carbs.",
		recommend: func(Goal) *catalog.ShakeRecord { return firstOf(catalog.GetByTimeOfDay("Morning")) },
	},
	{
		name:      "Pre-Workout Snack",
		timeOfDay: "30-45 minutes before training",
		percent:   0.12,
		proteinX:  1, carbsX: 1, fatX: 1,
		notes:      "Fast carbs, easy on the stomach.",
		includedIf: func(s UserStats) bool { return s.TrainingDaysPerWeek >= 4 },
		recommend:  func(Goal) *catalog.ShakeRecord { return firstOf(catalog.GetByGoalTag("Pre-Workout")) },
	},
	{
		name:      "Post-Workout",
		timeOfDay: "Within 45 minutes after training",
		percent:   0.23,
		proteinX:  1.2, carbsX: 1.3, fatX: 0.8,
		notes:     "Protein and carbs weighted up for recovery, fat kept light.",
		recommend: recommendPostWorkout,
	},
	{
		name:      "Lunch",
		timeOfDay: "Midday",
		percent:   0.25,
		proteinX:  1, carbsX: 1, fatX: 1,
		notes:     "Largest whole-food meal of the day.",
	},
	{
		name:      "Dinner",
		timeOfDay: "Evening",
		percent:   0.23,
		proteinX:  1.1, carbsX: 0.8, fatX: 1,
		notes:     "Protein-forward, carbs tapered.",
	},
	{
		name:      "Before Bed",
		timeOfDay: "30-60 minutes before sleep",
		percent:   0.10,
		proteinX:  1.5, carbsX: 0.3, fatX: 1.2,
		notes: "Slow protein to feed overnight recovery.",
		includedIf: func(s UserStats) bool {
			return s.Goal == GoalBulk || s.TrainingDaysPerWeek >= 5
		},
		recommend: func(Goal) *catalog.ShakeRecord { return firstOf(catalog.GetByTimeOfDay("Before Bed")) },
	},
}

// recommendPostWorkout prefers a post-workout shake tagged for the user's
// goal and falls back to the first post-workout match when no goal-specific
// record exists.
func recommendPostWorkout(goal Goal) *catalog.ShakeRecord {
	candidates := catalog.GetByTimeOfDay("Post-Workout")
	if len(candidates) == 0 {
		return nil
	}

	var wantTag string
	switch goal {
	case GoalBulk:
		wantTag = "Bulking"
	case GoalCut:
		wantTag = "Cutting"
	}

	if wantTag != "" {
		for _, c := range candidates {
			if c.HasGoalTag(wantTag) {
				return c
			}
		}
	}
	return candidates[0]
}

// Calculate runs the full pipeline: BMR, TDEE, goal-adjusted targets, the
// per-meal distribution, and the recommendations block. It is pure and
// deterministic; out-of-range input produces nonsensical but non-crashing
// output, so bounds validation stays a caller concern.
func Calculate(stats UserStats) Plan {
	bmr := CalculateBMR(stats)
	tdee := CalculateTDEE(bmr, stats.ActivityLevel)
	targets := CalculateTargets(stats, tdee)

	var meals []MealTiming
	for _, slot := range mealSlots {
		if slot.includedIf != nil && !slot.includedIf(stats) {
			continue
		}

		meal := MealTiming{
			Name:            slot.name,
			TimeOfDay:       slot.timeOfDay,
			PercentCalories: int(math.Round(slot.percent * 100)),
			Calories:        int(math.Round(float64(targets.Calories) * slot.percent)),
			ProteinG:        int(math.Round(float64(targets.ProteinG) * slot.percent * slot.proteinX)),
			CarbsG:          int(math.Round(float64(targets.CarbsG) * slot.percent * slot.carbsX)),
			FatG:            int(math.Round(float64(targets.FatG) * slot.percent * slot.fatX)),
			Notes:           slot.notes,
		}
		if slot.recommend != nil {
			meal.RecommendedShake = slot.recommend(stats.Goal)
		}
		meals = append(meals, meal)
	}

	adj := goalAdjustments[stats.Goal]
	protein := proteinTargets[stats.Goal]
	water := math.Round((stats.WeightKg*0.033+float64(stats.TrainingDaysPerWeek)*0.5)*10) / 10

	return Plan{
		BMR:     bmr,
		TDEE:    tdee,
		Targets: targets,
		Meals:   meals,
		Recommendations: Recommendations{
			ProteinPerKg:      math.Round(midpoint(protein)*10) / 10,
			WaterLitersPerDay: water,
			CalorieRange: CalorieRange{
				Min: tdee + adj.min,
				Max: tdee + adj.max,
			},
		},
	}
}

func midpoint(r floatRange) float64 {
	return (r.min + r.max) / 2
}

func firstOf(records []*catalog.ShakeRecord) *catalog.ShakeRecord {
	if len(records) == 0 {
		return nil
	}
	return records[0]
}
