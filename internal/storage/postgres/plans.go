package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rsantiago76/BetterMe-sub000/internal/storage"
)

func (s *PostgresStorage) CreatePlan(ctx context.Context, plan *storage.SavedPlan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}

	query := `
		INSERT INTO weekly_plans (id, owner_user_id, name, training_days, plan_json, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING created_at, updated_at
	`

	err := s.pool.QueryRow(ctx, query,
		plan.ID,
		plan.OwnerUserID,
		plan.Name,
		plan.TrainingDays,
		plan.PlanJSON,
	).Scan(&plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return nil
}

func (s *PostgresStorage) ListPlans(ctx context.Context, ownerUserID string) ([]storage.SavedPlan, error) {
	query := `
		SELECT id, owner_user_id, name, training_days, plan_json, created_at, updated_at
		FROM weekly_plans
		WHERE owner_user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var out []storage.SavedPlan
	for rows.Next() {
		var p storage.SavedPlan
		if err := rows.Scan(&p.ID, &p.OwnerUserID, &p.Name, &p.TrainingDays, &p.PlanJSON, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStorage) GetPlan(ctx context.Context, ownerUserID string, id uuid.UUID) (*storage.SavedPlan, error) {
	query := `
		SELECT id, owner_user_id, name, training_days, plan_json, created_at, updated_at
		FROM weekly_plans
		WHERE id = $1 AND owner_user_id = $2
	`

	var p storage.SavedPlan
	err := s.pool.QueryRow(ctx, query, id, ownerUserID).Scan(
		&p.ID, &p.OwnerUserID, &p.Name, &p.TrainingDays, &p.PlanJSON, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return &p, nil
}

func (s *PostgresStorage) DeletePlan(ctx context.Context, ownerUserID string, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM weekly_plans WHERE id = $1 AND owner_user_id = $2`, id, ownerUserID)
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
