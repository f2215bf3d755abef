package reports

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rsantiago76/BetterMe-sub000/internal/blob"
	"github.com/rsantiago76/BetterMe-sub000/internal/mealprep"
)

// ReportDTO describes a stored report export.
type ReportDTO struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	SizeBytes int64  `json:"size_bytes"`
}

// Service generates plan reports and stores them through the blob store.
type Service struct {
	plans      *mealprep.Service
	store      blob.Store
	presignTTL int
}

// NewService creates a new reports service.
func NewService(plans *mealprep.Service, store blob.Store, presignTTLSeconds int) *Service {
	return &Service{
		plans:      plans,
		store:      store,
		presignTTL: presignTTLSeconds,
	}
}

// Export renders the shopping-list PDF for a saved plan, stores it, and
// returns a download URL (presigned for S3, file path for local).
func (s *Service) Export(ctx context.Context, ownerUserID string, planID uuid.UUID) (*ReportDTO, error) {
	plan, err := s.plans.Get(ctx, ownerUserID, planID)
	if err != nil {
		return nil, err
	}

	data, err := GeneratePDF(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	key := fmt.Sprintf("reports/%s/%s.pdf", ownerUserID, planID)
	size, err := s.store.PutObject(ctx, key, data, "application/pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, s.presignTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to presign report: %w", err)
	}

	return &ReportDTO{Key: key, URL: url, SizeBytes: size}, nil
}
