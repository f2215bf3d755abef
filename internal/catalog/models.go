package catalog

import "strings"

// Macros holds the nutrition facts for one serving of a shake. Catalog data
// is hand-authored, so the calorie figure is not guaranteed to equal the
// 4/4/9 conversion of the gram fields exactly.
type Macros struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// Ingredient is a single line of a shake recipe.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Note   string  `json:"note,omitempty"`
}

// BestTime describes when a shake is meant to be consumed.
type BestTime struct {
	TimeOfDay     string `json:"time_of_day"`
	WindowMinutes int    `json:"window_minutes"`
	Note          string `json:"note,omitempty"`
}

// ShakeRecord is one entry of the fixed shake catalog. Records are built
// once at init and never mutated, so sharing pointers across goroutines is
// safe.
type ShakeRecord struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	GoalTags    []string     `json:"goal_tags"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
	Macros      Macros       `json:"macros"`
	BestTime    BestTime     `json:"best_time"`
	Allergens   []string     `json:"allergens"`
	Servings    int          `json:"servings"`
}

// HasGoalTag reports whether the record carries the tag, ignoring case.
func (r *ShakeRecord) HasGoalTag(tag string) bool {
	for _, t := range r.GoalTags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// HasAllergen reports whether the record lists the allergen, ignoring case.
func (r *ShakeRecord) HasAllergen(allergen string) bool {
	for _, a := range r.Allergens {
		if strings.EqualFold(a, allergen) {
			return true
		}
	}
	return false
}
