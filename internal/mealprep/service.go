package mealprep

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rsantiago76/BetterMe-sub000/internal/storage"
)

// PlanDocument is the complete generated artifact for one week: the
// schedule itself plus everything derived from it. This is the shape
// persisted as JSON and returned by the API.
type PlanDocument struct {
	Plan         WeeklyPlan         `json:"plan"`
	ShoppingList []ShoppingListItem `json:"shopping_list"`
	Categories   []CategoryGroup    `json:"categories"`
	Nutrition    NutritionTotals    `json:"nutrition"`
}

// BuildPlanDocument runs the full generation pass for a set of training
// days.
func BuildPlanDocument(trainingDays []DayOfWeek) PlanDocument {
	plan := GenerateWeeklyPlan(trainingDays)
	list := BuildShoppingList(plan)
	return PlanDocument{
		Plan:         plan,
		ShoppingList: list,
		Categories:   GroupByCategory(list),
		Nutrition:    CalculateNutritionTotals(plan),
	}
}

// SavedPlanDTO is a persisted plan with its full document.
type SavedPlanDTO struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	TrainingDays []string     `json:"training_days"`
	Document     PlanDocument `json:"document"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// SavedPlanSummary is the list view of a persisted plan (no document).
type SavedPlanSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	TrainingDays []string  `json:"training_days"`
	CreatedAt    time.Time `json:"created_at"`
}

// Service handles weekly plan generation and persistence.
type Service struct {
	storage storage.PlansStorage
}

// NewService creates a new meal-prep service.
func NewService(storage storage.PlansStorage) *Service {
	return &Service{storage: storage}
}

// parseDays validates and converts lowercase day names.
func parseDays(names []string) ([]DayOfWeek, error) {
	days := make([]DayOfWeek, 0, len(names))
	for _, n := range names {
		d, err := ParseDay(n)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// Preview generates a plan document without persisting it.
func (s *Service) Preview(trainingDays []string) (PlanDocument, error) {
	days, err := parseDays(trainingDays)
	if err != nil {
		return PlanDocument{}, err
	}
	return BuildPlanDocument(days), nil
}

// Create generates a plan document and saves it under a name.
func (s *Service) Create(ctx context.Context, ownerUserID, name string, trainingDays []string) (*SavedPlanDTO, error) {
	if len(name) < 1 || len(name) > 200 {
		return nil, fmt.Errorf("name must be between 1 and 200 characters")
	}

	days, err := parseDays(trainingDays)
	if err != nil {
		return nil, err
	}
	doc := BuildPlanDocument(days)

	planJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}

	saved := &storage.SavedPlan{
		OwnerUserID:  ownerUserID,
		Name:         name,
		TrainingDays: trainingDays,
		PlanJSON:     planJSON,
	}
	if err := s.storage.CreatePlan(ctx, saved); err != nil {
		return nil, err
	}

	return &SavedPlanDTO{
		ID:           saved.ID,
		Name:         saved.Name,
		TrainingDays: saved.TrainingDays,
		Document:     doc,
		CreatedAt:    saved.CreatedAt,
		UpdatedAt:    saved.UpdatedAt,
	}, nil
}

// List returns the user's saved plans, newest first.
func (s *Service) List(ctx context.Context, ownerUserID string) ([]SavedPlanSummary, error) {
	plans, err := s.storage.ListPlans(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	out := make([]SavedPlanSummary, len(plans))
	for i, p := range plans {
		out[i] = SavedPlanSummary{
			ID:           p.ID,
			Name:         p.Name,
			TrainingDays: p.TrainingDays,
			CreatedAt:    p.CreatedAt,
		}
	}
	return out, nil
}

// Get returns one saved plan with its full document.
func (s *Service) Get(ctx context.Context, ownerUserID string, id uuid.UUID) (*SavedPlanDTO, error) {
	p, err := s.storage.GetPlan(ctx, ownerUserID, id)
	if err != nil {
		return nil, err
	}

	var doc PlanDocument
	if err := json.Unmarshal(p.PlanJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode stored plan: %w", err)
	}

	return &SavedPlanDTO{
		ID:           p.ID,
		Name:         p.Name,
		TrainingDays: p.TrainingDays,
		Document:     doc,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}, nil
}

// Delete removes one saved plan.
func (s *Service) Delete(ctx context.Context, ownerUserID string, id uuid.UUID) error {
	return s.storage.DeletePlan(ctx, ownerUserID, id)
}
