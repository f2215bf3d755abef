// Package catalog exposes read-only queries over the fixed shake recipe
// catalog. The data set is small (tens of records), so every query is a
// plain linear scan; empty results are valid and callers are expected to
// fall back to "no recommendation".
package catalog

import "strings"

// All returns every record in the catalog in authoring order.
func All() []*ShakeRecord {
	out := make([]*ShakeRecord, len(shakes))
	for i := range shakes {
		out[i] = &shakes[i]
	}
	return out
}

// GetByID returns the record with the given ID, or nil if none exists.
func GetByID(id string) *ShakeRecord {
	for i := range shakes {
		if shakes[i].ID == id {
			return &shakes[i]
		}
	}
	return nil
}

// GetByName returns the record with the given name (case-insensitive), or
// nil if none exists.
func GetByName(name string) *ShakeRecord {
	for i := range shakes {
		if strings.EqualFold(shakes[i].Name, name) {
			return &shakes[i]
		}
	}
	return nil
}

// GetByGoalTag returns all records carrying the tag, matched
// case-insensitively against any entry of GoalTags.
func GetByGoalTag(tag string) []*ShakeRecord {
	var out []*ShakeRecord
	for i := range shakes {
		if shakes[i].HasGoalTag(tag) {
			out = append(out, &shakes[i])
		}
	}
	return out
}

// GetByTimeOfDay returns all records whose BestTime.TimeOfDay matches,
// ignoring case.
func GetByTimeOfDay(timeOfDay string) []*ShakeRecord {
	var out []*ShakeRecord
	for i := range shakes {
		if strings.EqualFold(shakes[i].BestTime.TimeOfDay, timeOfDay) {
			out = append(out, &shakes[i])
		}
	}
	return out
}

// GetExcludingAllergen returns all records that do NOT list the allergen.
func GetExcludingAllergen(allergen string) []*ShakeRecord {
	var out []*ShakeRecord
	for i := range shakes {
		if !shakes[i].HasAllergen(allergen) {
			out = append(out, &shakes[i])
		}
	}
	return out
}

// GetByMaxCalories returns all records at or under the calorie cap.
func GetByMaxCalories(cap int) []*ShakeRecord {
	var out []*ShakeRecord
	for i := range shakes {
		if shakes[i].Macros.Calories <= cap {
			out = append(out, &shakes[i])
		}
	}
	return out
}

// GetByMinProtein returns all records at or above the protein floor.
func GetByMinProtein(floor int) []*ShakeRecord {
	var out []*ShakeRecord
	for i := range shakes {
		if shakes[i].Macros.ProteinG >= floor {
			out = append(out, &shakes[i])
		}
	}
	return out
}
