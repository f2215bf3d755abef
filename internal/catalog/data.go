package catalog

// shakes is the fixed reference catalog. It is read-only after init; every
// query in catalog.go scans this slice.
var shakes = []ShakeRecord{
	{
		ID:   "mass-builder-power",
		Name: "Mass Builder Power Shake",
		GoalTags: []string{"Bulking", "Post-Workout"},
		Ingredients: []Ingredient{
			{Name: "Whey Protein", Amount: 2, Unit: "scoop", Note: "chocolate or vanilla"},
			{Name: "Whole Milk", Amount: 400, Unit: "ml"},
			{Name: "Banana", Amount: 1, Unit: "piece", Note: "ripe"},
			{Name: "Rolled Oats", Amount: 60, Unit: "g"},
			{Name: "Peanut Butter", Amount: 2, Unit: "tbsp"},
			{Name: "Honey", Amount: 1, Unit: "tbsp"},
		},
		Steps: []string{
			"Add milk first, then powders and solids.",
			"Blend on high for 45-60 seconds until smooth.",
			"Drink within 30 minutes of finishing training.",
		},
		Macros:    Macros{Calories: 780, ProteinG: 55, CarbsG: 92, FatG: 22},
		BestTime:  BestTime{TimeOfDay: "Post-Workout", WindowMinutes: 30, Note: "anabolic window slot"},
		Allergens: []string{"dairy", "peanuts", "gluten"},
		Servings:  1,
	},
	{
		ID:   "pb-recovery-blend",
		Name: "Peanut Butter Recovery Blend",
		GoalTags: []string{"Bulking", "Recovery"},
		Ingredients: []Ingredient{
			{Name: "Whey Protein", Amount: 1.5, Unit: "scoop"},
			{Name: "Whole Milk", Amount: 300, Unit: "ml"},
			{Name: "Peanut Butter", Amount: 2, Unit: "tbsp", Note: "natural, unsweetened"},
			{Name: "Banana", Amount: 1, Unit: "piece"},
			{Name: "Greek Yogurt", Amount: 100, Unit: "g"},
		},
		Steps: []string{
			"Combine all ingredients in the blender.",
			"Blend until creamy, adding milk to adjust thickness.",
		},
		Macros:    Macros{Calories: 610, ProteinG: 48, CarbsG: 52, FatG: 24},
		BestTime:  BestTime{TimeOfDay: "Post-Workout", WindowMinutes: 45},
		Allergens: []string{"dairy", "peanuts"},
		Servings:  1,
	},
	{
		ID:   "night-casein",
		Name: "Night Recovery Casein Shake",
		GoalTags: []string{"Bulking", "Recovery"},
		Ingredients: []Ingredient{
			{Name: "Casein Protein", Amount: 1, Unit: "scoop"},
			{Name: "Almond Milk", Amount: 250, Unit: "ml", Note: "unsweetened"},
			{Name: "Greek Yogurt", Amount: 80, Unit: "g"},
			{Name: "Cinnamon", Amount: 0.5, Unit: "tsp"},
		},
		Steps: []string{
			"Shake or blend until the casein fully dissolves.",
			"Have 30-60 minutes before bed.",
		},
		Macros:    Macros{Calories: 290, ProteinG: 36, CarbsG: 14, FatG: 9},
		BestTime:  BestTime{TimeOfDay: "Before Bed", WindowMinutes: 60, Note: "slow-digesting protein overnight"},
		Allergens: []string{"dairy", "tree nuts"},
		Servings:  1,
	},
	{
		ID:   "oatmeal-breakfast",
		Name: "Oatmeal Breakfast Builder",
		GoalTags: []string{"Bulking", "Breakfast"},
		Ingredients: []Ingredient{
			{Name: "Rolled Oats", Amount: 50, Unit: "g"},
			{Name: "Whey Protein", Amount: 1, Unit: "scoop"},
			{Name: "Whole Milk", Amount: 300, Unit: "ml"},
			{Name: "Blueberries", Amount: 80, Unit: "g", Note: "fresh or frozen"},
			{Name: "Honey", Amount: 1, Unit: "tbsp"},
			{Name: "Chia Seeds", Amount: 1, Unit: "tbsp"},
		},
		Steps: []string{
			"Soak the oats in milk for 5 minutes.",
			"Add the rest and blend until smooth.",
		},
		Macros:    Macros{Calories: 520, ProteinG: 38, CarbsG: 68, FatG: 12},
		BestTime:  BestTime{TimeOfDay: "Morning", WindowMinutes: 90, Note: "slow carbs to start the day"},
		Allergens: []string{"dairy", "gluten"},
		Servings:  1,
	},
	{
		ID:   "lean-green",
		Name: "Lean Muscle Green Shake",
		GoalTags: []string{"Cutting", "Breakfast"},
		Ingredients: []Ingredient{
			{Name: "Whey Protein", Amount: 1, Unit: "scoop", Note: "vanilla works best"},
			{Name: "Spinach", Amount: 60, Unit: "g"},
			{Name: "Almond Milk", Amount: 300, Unit: "ml", Note: "unsweetened"},
			{Name: "Green Apple", Amount: 0.5, Unit: "piece"},
			{Name: "Chia Seeds", Amount: 1, Unit: "tbsp"},
		},
		Steps: []string{
			"Blend spinach and almond milk first to break the leaves down.",
			"Add the remaining ingredients and blend again.",
		},
		Macros:    Macros{Calories: 280, ProteinG: 30, CarbsG: 22, FatG: 8},
		BestTime:  BestTime{TimeOfDay: "Morning", WindowMinutes: 120},
		Allergens: []string{"dairy", "tree nuts"},
		Servings:  1,
	},
	{
		ID:   "berry-igniter",
		Name: "Berry Energy Igniter",
		GoalTags: []string{"Pre-Workout", "Cutting"},
		Ingredients: []Ingredient{
			{Name: "Whey Protein", Amount: 0.5, Unit: "scoop"},
			{Name: "Blueberries", Amount: 100, Unit: "g"},
			{Name: "Strawberries", Amount: 80, Unit: "g"},
			{Name: "Coconut Water", Amount: 250, Unit: "ml"},
			{Name: "Honey", Amount: 0.5, Unit: "tbsp"},
		},
		Steps: []string{
			"Blend everything for 30 seconds.",
			"Drink 30-45 minutes before training.",
		},
		Macros:    Macros{Calories: 210, ProteinG: 14, CarbsG: 36, FatG: 2},
		BestTime:  BestTime{TimeOfDay: "Pre-Workout", WindowMinutes: 45, Note: "fast carbs for the session"},
		Allergens: []string{"dairy"},
		Servings:  1,
	},
	{
		ID:   "lean-recovery",
		Name: "Lean Recovery Shake",
		GoalTags: []string{"Cutting", "Post-Workout"},
		Ingredients: []Ingredient{
			{Name: "Whey Protein", Amount: 1.5, Unit: "scoop"},
			{Name: "Almond Milk", Amount: 300, Unit: "ml"},
			{Name: "Strawberries", Amount: 100, Unit: "g"},
			{Name: "Spinach", Amount: 30, Unit: "g", Note: "you won't taste it"},
		},
		Steps: []string{
			"Blend all ingredients until smooth.",
			"Take within 45 minutes after training.",
		},
		Macros:    Macros{Calories: 260, ProteinG: 40, CarbsG: 18, FatG: 5},
		BestTime:  BestTime{TimeOfDay: "Post-Workout", WindowMinutes: 45},
		Allergens: []string{"dairy", "tree nuts"},
		Servings:  1,
	},
	{
		ID:   "choc-almond-dream",
		Name: "Chocolate Almond Dream",
		GoalTags: []string{"Cutting", "Dessert"},
		Ingredients: []Ingredient{
			{Name: "Casein Protein", Amount: 1, Unit: "scoop", Note: "chocolate"},
			{Name: "Almond Milk", Amount: 250, Unit: "ml"},
			{Name: "Almond Butter", Amount: 1, Unit: "tbsp"},
			{Name: "Cocoa Powder", Amount: 1, Unit: "tsp", Note: "unsweetened"},
			{Name: "Stevia", Amount: 1, Unit: "packet", Note: "to taste"},
		},
		Steps: []string{
			"Blend until thick and pudding-like.",
			"Chill for 10 minutes for a dessert texture.",
		},
		Macros:    Macros{Calories: 250, ProteinG: 28, CarbsG: 10, FatG: 12},
		BestTime:  BestTime{TimeOfDay: "Before Bed", WindowMinutes: 90, Note: "dessert craving replacement"},
		Allergens: []string{"dairy", "tree nuts"},
		Servings:  1,
	},
}
