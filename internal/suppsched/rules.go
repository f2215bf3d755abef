package suppsched

// caffeineCutoffHour: caffeine computed at or after this hour gets a sleep
// warning.
var caffeineCutoffHour = 16

// timingRules is the fixed per-supplement timing table, in display order.
// IDs not present here are silently skipped by the scheduler.
var timingRules = []TimingRule{
	{
		SupplementID:   "caffeine",
		Name:           "Caffeine",
		Anchor:         AnchorPreWorkout,
		OffsetMinutes:  -45,
		Notes:          "Take 30-60 minutes before training for peak effect.",
		AvoidAfterHour: &caffeineCutoffHour,
	},
	{
		SupplementID:  "citrulline_malate",
		Name:          "Citrulline Malate",
		Anchor:        AnchorPreWorkout,
		OffsetMinutes: -40,
		Notes:         "6-8g; needs time to absorb before the session.",
	},
	{
		SupplementID:  "creatine",
		Name:          "Creatine Monohydrate",
		Anchor:        AnchorPostWorkout,
		OffsetMinutes: 15,
		Notes:         "5g daily; consistency matters far more than timing.",
	},
	{
		SupplementID:  "whey_protein",
		Name:          "Whey Protein",
		Anchor:        AnchorPostWorkout,
		OffsetMinutes: 0,
		Notes:         "25-30g as soon as convenient after training.",
	},
	{
		SupplementID:  "vitamin_d3",
		Name:          "Vitamin D3",
		Anchor:        AnchorWake,
		OffsetMinutes: 30,
		WithFood:      true,
		Notes:         "Morning dosing with food mirrors the natural rhythm.",
	},
	{
		SupplementID:  "multivitamin",
		Name:          "Multivitamin",
		Anchor:        AnchorWithMeal,
		OffsetMinutes: 0,
		WithFood:      true,
		Notes:         "Fat-soluble vitamins absorb better alongside a meal.",
	},
	{
		SupplementID:  "fish_oil",
		Name:          "Fish Oil (Omega-3)",
		Anchor:        AnchorWithMeal,
		OffsetMinutes: 0,
		WithFood:      true,
		Notes:         "Take with the largest meal of the day.",
	},
	{
		SupplementID:  "beta_alanine",
		Name:          "Beta-Alanine",
		Anchor:        AnchorWithMeal,
		OffsetMinutes: 0,
		WithFood:      true,
		Notes:         "Split doses through the day to limit tingling.",
	},
	{
		SupplementID:  "electrolytes",
		Name:          "Electrolytes",
		Anchor:        AnchorMidday,
		OffsetMinutes: 0,
		Notes:         "Top up through the day; increase on heavy sweat days.",
	},
	{
		SupplementID:  "magnesium",
		Name:          "Magnesium Glycinate",
		Anchor:        AnchorBedtime,
		OffsetMinutes: -30,
		Notes:         "Glycinate form is gentle on the stomach.",
	},
	{
		SupplementID:  "zinc",
		Name:          "Zinc",
		Anchor:        AnchorBedtime,
		OffsetMinutes: -60,
		Notes:         "Keep away from calcium and iron for absorption.",
	},
	{
		SupplementID:  "ashwagandha",
		Name:          "Ashwagandha",
		Anchor:        AnchorBedtime,
		OffsetMinutes: -60,
		WithFood:      true,
		Notes:         "Evening dosing supports the cortisol wind-down.",
	},
	{
		SupplementID:  "melatonin",
		Name:          "Melatonin",
		Anchor:        AnchorBedtime,
		OffsetMinutes: -30,
		Notes:         "Start with the lowest dose that works.",
	},
}

// rulesByID indexes timingRules for lookup. Built once at init.
var rulesByID = func() map[string]TimingRule {
	m := make(map[string]TimingRule, len(timingRules))
	for _, r := range timingRules {
		m[r.SupplementID] = r
	}
	return m
}()

// Rules returns the full timing table in display order.
func Rules() []TimingRule {
	out := make([]TimingRule, len(timingRules))
	copy(out, timingRules)
	return out
}

// RuleFor returns the timing rule for a supplement ID, if one exists.
func RuleFor(id string) (TimingRule, bool) {
	r, ok := rulesByID[id]
	return r, ok
}
