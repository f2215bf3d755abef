package mealprep

import "strings"

// categoryKeywords is the fixed taxonomy used to group shopping list items
// for display. Matching is case-insensitive substring against the item
// name; first category with a hit wins, anything unmatched lands in
// "Other". Extending the taxonomy to new ingredients means extending this
// table.
var categoryKeywords = []struct {
	name     string
	keywords []string
}{
	{"Protein Powders", []string{"whey", "casein", "protein"}},
	{"Dairy & Alternatives", []string{"milk", "yogurt", "kefir"}},
	{"Nut Butters", []string{"peanut butter", "almond butter", "cashew butter"}},
	{"Fruits", []string{"banana", "blueberr", "strawberr", "apple", "mango", "berries"}},
	{"Vegetables", []string{"spinach", "kale", "avocado", "cucumber"}},
	{"Grains & Seeds", []string{"oat", "chia", "flax", "quinoa"}},
	{"Sweeteners & Flavors", []string{"honey", "stevia", "cocoa", "cinnamon", "vanilla", "maple"}},
}

const otherCategory = "Other"

// GroupByCategory partitions a shopping list into the fixed category order,
// omitting empty categories. The "Other" bucket, when non-empty, is always
// last.
func GroupByCategory(items []ShoppingListItem) []CategoryGroup {
	grouped := make(map[string][]ShoppingListItem, len(categoryKeywords)+1)
	for _, item := range items {
		cat := categorize(item.Name)
		grouped[cat] = append(grouped[cat], item)
	}

	out := make([]CategoryGroup, 0, len(grouped))
	for _, cat := range categoryKeywords {
		if members := grouped[cat.name]; len(members) > 0 {
			out = append(out, CategoryGroup{Category: cat.name, Items: members})
		}
	}
	if members := grouped[otherCategory]; len(members) > 0 {
		out = append(out, CategoryGroup{Category: otherCategory, Items: members})
	}
	return out
}

func categorize(name string) string {
	lower := strings.ToLower(name)
	for _, cat := range categoryKeywords {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return cat.name
			}
		}
	}
	return otherCategory
}
