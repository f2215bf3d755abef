// Package stats persists each user's latest body stats so the frontend can
// prefill the macro calculator between sessions.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rsantiago76/BetterMe-sub000/internal/macros"
	"github.com/rsantiago76/BetterMe-sub000/internal/storage"
)

// StatsDTO is the stored stats document. It reuses the macro calculator's
// request shape so a saved document can be replayed against the calculator
// unchanged.
type StatsDTO struct {
	Stats     macros.CalculateRequest `json:"stats"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// Service handles stats persistence.
type Service struct {
	storage storage.StatsStorage
}

// NewService creates a new stats service.
func NewService(storage storage.StatsStorage) *Service {
	return &Service{storage: storage}
}

// Upsert validates and stores the user's stats.
func (s *Service) Upsert(ctx context.Context, ownerUserID string, req macros.CalculateRequest) error {
	if _, err := req.Stats(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	return s.storage.UpsertStats(ctx, ownerUserID, payload)
}

// Get returns the user's stored stats; found=false when none were saved.
func (s *Service) Get(ctx context.Context, ownerUserID string) (*StatsDTO, bool, error) {
	payload, updatedAt, found, err := s.storage.GetStats(ctx, ownerUserID)
	if err != nil || !found {
		return nil, false, err
	}

	var req macros.CalculateRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, false, fmt.Errorf("failed to decode stored stats: %w", err)
	}
	return &StatsDTO{Stats: req, UpdatedAt: updatedAt}, true, nil
}
