package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested row does not exist or belongs to
// another user.
var ErrNotFound = errors.New("not found")

// SavedPlan is a persisted weekly shake plan. The generated plan itself is
// stored as a JSON document — the generator owns its shape, storage has no
// opinion on it.
type SavedPlan struct {
	ID           uuid.UUID
	OwnerUserID  string
	Name         string
	TrainingDays []string
	PlanJSON     []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PlansStorage persists saved weekly plans.
type PlansStorage interface {
	// CreatePlan stores a new plan.
	CreatePlan(ctx context.Context, plan *SavedPlan) error

	// ListPlans returns all plans of a user, newest first.
	ListPlans(ctx context.Context, ownerUserID string) ([]SavedPlan, error)

	// GetPlan returns a plan by ID, scoped to the owner.
	GetPlan(ctx context.Context, ownerUserID string, id uuid.UUID) (*SavedPlan, error)

	// DeletePlan removes a plan by ID, scoped to the owner.
	DeletePlan(ctx context.Context, ownerUserID string, id uuid.UUID) error
}

// StatsStorage persists the user's latest body stats as a JSON payload
// (one row per user, upserted).
type StatsStorage interface {
	// UpsertStats stores or replaces the user's stats payload.
	UpsertStats(ctx context.Context, ownerUserID string, payload []byte) error

	// GetStats returns the user's stats payload; found=false when the user
	// has never saved stats.
	GetStats(ctx context.Context, ownerUserID string) (payload []byte, updatedAt time.Time, found bool, err error)
}

// Storage is the combined persistence interface the server wires up, backed
// by Postgres or the in-memory fallback.
type Storage interface {
	PlansStorage
	StatsStorage

	// Close releases the underlying connection pool (no-op for memory).
	Close() error
}
