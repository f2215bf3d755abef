// Package memory is the in-memory Storage implementation used when no
// database is configured (local development and tests).
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rsantiago76/BetterMe-sub000/internal/storage"
)

type statsRow struct {
	payload   []byte
	updatedAt time.Time
}

// MemoryStorage implements storage.Storage with maps behind a RWMutex.
type MemoryStorage struct {
	mu    sync.RWMutex
	plans map[uuid.UUID]storage.SavedPlan
	stats map[string]statsRow
}

// New creates an empty MemoryStorage.
func New() *MemoryStorage {
	return &MemoryStorage{
		plans: make(map[uuid.UUID]storage.SavedPlan),
		stats: make(map[string]statsRow),
	}
}

func (m *MemoryStorage) CreatePlan(ctx context.Context, plan *storage.SavedPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	m.plans[plan.ID] = *plan
	return nil
}

func (m *MemoryStorage) ListPlans(ctx context.Context, ownerUserID string) ([]storage.SavedPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []storage.SavedPlan
	for _, p := range m.plans {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStorage) GetPlan(ctx context.Context, ownerUserID string, id uuid.UUID) (*storage.SavedPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.plans[id]
	if !ok || p.OwnerUserID != ownerUserID {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (m *MemoryStorage) DeletePlan(ctx context.Context, ownerUserID string, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.plans[id]
	if !ok || p.OwnerUserID != ownerUserID {
		return storage.ErrNotFound
	}
	delete(m.plans, id)
	return nil
}

func (m *MemoryStorage) UpsertStats(ctx context.Context, ownerUserID string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats[ownerUserID] = statsRow{
		payload:   append([]byte(nil), payload...),
		updatedAt: time.Now(),
	}
	return nil
}

func (m *MemoryStorage) GetStats(ctx context.Context, ownerUserID string) ([]byte, time.Time, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	row, ok := m.stats[ownerUserID]
	if !ok {
		return nil, time.Time{}, false, nil
	}
	return append([]byte(nil), row.payload...), row.updatedAt, true, nil
}

func (m *MemoryStorage) Close() error {
	return nil
}
