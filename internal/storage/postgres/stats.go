package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

func (s *PostgresStorage) UpsertStats(ctx context.Context, ownerUserID string, payload []byte) error {
	query := `
		INSERT INTO user_stats (owner_user_id, payload, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		ON CONFLICT (owner_user_id)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
	`

	if _, err := s.pool.Exec(ctx, query, ownerUserID, payload); err != nil {
		return fmt.Errorf("failed to upsert stats: %w", err)
	}
	return nil
}

func (s *PostgresStorage) GetStats(ctx context.Context, ownerUserID string) ([]byte, time.Time, bool, error) {
	query := `
		SELECT payload, updated_at
		FROM user_stats
		WHERE owner_user_id = $1
	`

	var payload []byte
	var updatedAt time.Time
	err := s.pool.QueryRow(ctx, query, ownerUserID).Scan(&payload, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("failed to get stats: %w", err)
	}
	return payload, updatedAt, true, nil
}
