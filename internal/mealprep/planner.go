// Package mealprep generates a 7-day shake schedule from a set of training
// days, plus the aggregated shopping list and weekly nutrition totals
// derived from it.
package mealprep

import (
	"math"

	"github.com/rsantiago76/BetterMe-sub000/internal/catalog"
)

// Fixed catalog assignments used by the generator. The two post-workout
// shakes alternate across training days for variety; the weekend keeps its
// own breakfast mapping.
const (
	postWorkoutEvenShake = "Mass Builder Power Shake"
	postWorkoutOddShake  = "Peanut Butter Recovery Blend"
	caseinShake          = "Night Recovery Casein Shake"
	saturdayShake        = "Oatmeal Breakfast Builder"
	sundayShake          = "Lean Muscle Green Shake"
	weekdayRestShake     = "Lean Muscle Green Shake"
)

// caseinThreshold is the weekly training-day count at which a before-bed
// casein slot is added to every training day.
const caseinThreshold = 4

// GenerateWeeklyPlan produces the full Monday-to-Sunday schedule. The input
// order is irrelevant (and duplicates are harmless): days are always
// iterated in calendar order, and the round-robin index counts training days
// in that order, not input order. An empty input yields an all-rest week.
func GenerateWeeklyPlan(trainingDays []DayOfWeek) WeeklyPlan {
	training := make(map[DayOfWeek]bool, len(trainingDays))
	for _, d := range trainingDays {
		training[d] = true
	}

	trainingCount := 0
	for _, day := range weekDays {
		if training[day] {
			trainingCount++
		}
	}

	plan := WeeklyPlan{
		Days:         make([]DayPlan, 0, len(weekDays)),
		TrainingDays: trainingCount,
		RestDays:     len(weekDays) - trainingCount,
	}

	trainingIndex := 0
	for _, day := range weekDays {
		dayPlan := DayPlan{Day: day, IsTrainingDay: training[day]}

		if training[day] {
			name := postWorkoutEvenShake
			if trainingIndex%2 == 1 {
				name = postWorkoutOddShake
			}
			trainingIndex++

			dayPlan.Slots = append(dayPlan.Slots, ShakeSlot{
				Bucket:    BucketPostWorkout,
				TimeLabel: "Within 45 min after training",
				Shake:     catalog.GetByName(name),
			})

			if trainingCount >= caseinThreshold {
				dayPlan.Slots = append(dayPlan.Slots, ShakeSlot{
					Bucket:    BucketEvening,
					TimeLabel: "30-60 min before bed",
					Shake:     catalog.GetByName(caseinShake),
					Notes:     "High training volume week: casein to cover overnight recovery.",
				})
			}
		} else {
			name := weekdayRestShake
			switch day {
			case Saturday:
				name = saturdayShake
			case Sunday:
				name = sundayShake
			}

			dayPlan.Slots = append(dayPlan.Slots, ShakeSlot{
				Bucket:    BucketMorning,
				TimeLabel: "With breakfast",
				Shake:     catalog.GetByName(name),
			})
		}

		plan.TotalShakes += len(dayPlan.Slots)
		plan.Days = append(plan.Days, dayPlan)
	}

	return plan
}

// CalculateNutritionTotals sums macros for every scheduled shake instance in
// the week.
func CalculateNutritionTotals(plan WeeklyPlan) NutritionTotals {
	var totals NutritionTotals
	for _, day := range plan.Days {
		for _, slot := range day.Slots {
			if slot.Shake == nil {
				continue
			}
			totals.WeeklyCalories += slot.Shake.Macros.Calories
			totals.WeeklyProteinG += slot.Shake.Macros.ProteinG
			totals.WeeklyCarbsG += slot.Shake.Macros.CarbsG
			totals.WeeklyFatG += slot.Shake.Macros.FatG
		}
	}

	totals.DailyAvgCalories = roundDiv7(totals.WeeklyCalories)
	totals.DailyAvgProteinG = roundDiv7(totals.WeeklyProteinG)
	totals.DailyAvgCarbsG = roundDiv7(totals.WeeklyCarbsG)
	totals.DailyAvgFatG = roundDiv7(totals.WeeklyFatG)
	return totals
}

func roundDiv7(v int) int {
	return int(math.Round(float64(v) / 7))
}
