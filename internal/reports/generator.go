// Package reports renders saved weekly plans into printable PDF shopping
// lists and stores them through the blob store.
package reports

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/rsantiago76/BetterMe-sub000/internal/mealprep"
)

// GeneratePDF renders a saved plan into a one-or-more page A4 PDF: plan
// summary, day-by-day schedule, and the shopping list grouped by category.
func GeneratePDF(plan *mealprep.SavedPlanDTO) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(plan.Name, false)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, plan.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, fmt.Sprintf("Training days: %s", strings.Join(plan.TrainingDays, ", ")), "", 1, "L", false, 0, "")
	doc := plan.Document
	pdf.CellFormat(0, 6, fmt.Sprintf("%d shakes this week - %d training days, %d rest days",
		doc.Plan.TotalShakes, doc.Plan.TrainingDays, doc.Plan.RestDays), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// Week schedule
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "Week Schedule", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, day := range doc.Plan.Days {
		label := titleCase(string(day.Day))
		if day.IsTrainingDay {
			label += " (training)"
		}
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, label, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, slot := range day.Slots {
			name := "-"
			if slot.Shake != nil {
				name = slot.Shake.Name
			}
			pdf.CellFormat(0, 5, fmt.Sprintf("    %s - %s", slot.TimeLabel, name), "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(4)

	// Shopping list by category
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "Shopping List", "", 1, "L", false, 0, "")
	for _, group := range doc.Categories {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, group.Category, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, item := range group.Items {
			line := fmt.Sprintf("    %s - %s %s (%d servings)",
				item.Name, formatAmount(item.TotalAmount), item.Unit, item.Servings)
			if item.Note != "" {
				line += " - " + item.Note
			}
			pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(4)

	// Nutrition totals
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "Weekly Nutrition (shakes only)", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("    Calories: %d (avg %d/day)", doc.Nutrition.WeeklyCalories, doc.Nutrition.DailyAvgCalories), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("    Protein: %dg (avg %dg/day)", doc.Nutrition.WeeklyProteinG, doc.Nutrition.DailyAvgProteinG), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("    Carbs: %dg (avg %dg/day)", doc.Nutrition.WeeklyCarbsG, doc.Nutrition.DailyAvgCarbsG), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("    Fat: %dg (avg %dg/day)", doc.Nutrition.WeeklyFatG, doc.Nutrition.DailyAvgFatG), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatAmount trims trailing zeros so "2.0 tbsp" prints as "2 tbsp".
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
