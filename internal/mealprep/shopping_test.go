package mealprep

import (
	"sort"
	"strings"
	"testing"
)

func TestBuildShoppingListAggregation(t *testing.T) {
	plan := GenerateWeeklyPlan([]DayOfWeek{Monday, Wednesday, Friday})
	list := BuildShoppingList(plan)

	if len(list) == 0 {
		t.Fatal("expected a non-empty shopping list")
	}

	byName := make(map[string]ShoppingListItem, len(list))
	for _, item := range list {
		byName[strings.ToLower(item.Name)] = item
	}

	// Whey protein across the week: 2 scoops x2 (Mass Builder), 1.5 (PB
	// blend), 1 x3 (green shake), 1 (oatmeal builder) = 9.5 over 7 shakes.
	whey, ok := byName["whey protein"]
	if !ok {
		t.Fatal("expected whey protein on the list")
	}
	if whey.TotalAmount != 9.5 {
		t.Errorf("whey total = %v, want 9.5", whey.TotalAmount)
	}
	if whey.Servings != 7 {
		t.Errorf("whey servings = %d, want 7", whey.Servings)
	}
	if whey.Unit != "scoop" {
		t.Errorf("whey unit = %q, want scoop", whey.Unit)
	}
}

func TestBuildShoppingListConservation(t *testing.T) {
	plan := GenerateWeeklyPlan([]DayOfWeek{Monday, Tuesday, Thursday, Friday, Saturday})
	list := BuildShoppingList(plan)

	// Total servings across items equals total ingredient occurrences across
	// all scheduled shakes — aggregation never drops or invents entries.
	occurrences := 0
	amountByName := make(map[string]float64)
	for _, d := range plan.Days {
		for _, slot := range d.Slots {
			for _, ing := range slot.Shake.Ingredients {
				occurrences++
				amountByName[strings.ToLower(ing.Name)] += ing.Amount
			}
		}
	}

	servings := 0
	for _, item := range list {
		servings += item.Servings
		want := amountByName[strings.ToLower(item.Name)]
		if item.TotalAmount != want {
			t.Errorf("%s total = %v, want %v", item.Name, item.TotalAmount, want)
		}
	}
	if servings != occurrences {
		t.Errorf("servings sum = %d, want %d occurrences", servings, occurrences)
	}
	if len(list) != len(amountByName) {
		t.Errorf("list has %d items, want %d distinct ingredients", len(list), len(amountByName))
	}
}

func TestBuildShoppingListSorted(t *testing.T) {
	plan := GenerateWeeklyPlan([]DayOfWeek{Monday, Wednesday})
	list := BuildShoppingList(plan)

	sorted := sort.SliceIsSorted(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
	if !sorted {
		t.Error("expected the shopping list sorted alphabetically by name")
	}
}

func TestBuildShoppingListEmptyPlan(t *testing.T) {
	// A week of rest days still schedules breakfast shakes, so force a truly
	// empty plan.
	if got := BuildShoppingList(WeeklyPlan{}); len(got) != 0 {
		t.Errorf("expected empty list for empty plan, got %d items", len(got))
	}
}
