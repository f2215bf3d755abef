package mealprep

import (
	"sort"
	"strings"
)

// BuildShoppingList aggregates every ingredient across all scheduled shakes
// of the week. Items are keyed by lowercased ingredient name: amounts are
// summed (units are assumed uniform per name — mixing units for the same
// name is not handled), the servings counter tracks contributing shake
// occurrences, the display name and unit come from the first occurrence, and
// the note from the last. Output is sorted alphabetically by name.
func BuildShoppingList(plan WeeklyPlan) []ShoppingListItem {
	byName := make(map[string]*ShoppingListItem)

	for _, day := range plan.Days {
		for _, slot := range day.Slots {
			if slot.Shake == nil {
				continue
			}
			for _, ing := range slot.Shake.Ingredients {
				key := strings.ToLower(ing.Name)
				item, ok := byName[key]
				if !ok {
					item = &ShoppingListItem{Name: ing.Name, Unit: ing.Unit}
					byName[key] = item
				}
				item.TotalAmount += ing.Amount
				item.Servings++
				item.Note = ing.Note
			}
		}
	}

	out := make([]ShoppingListItem, 0, len(byName))
	for _, item := range byName {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
