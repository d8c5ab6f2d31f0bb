package encounter

import (
	"context"
	"log/slog"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

type encounterRepo interface {
	List(ctx context.Context, ownerID, campaignID string) ([]domain.SavedEncounter, error)
	Get(ctx context.Context, ownerID, id string) (domain.SavedEncounter, error)
	Create(ctx context.Context, ownerID string, e domain.SavedEncounter) (domain.SavedEncounter, error)
	Rename(ctx context.Context, ownerID, id, name string) (domain.SavedEncounter, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type campaignRepo interface {
	Get(ctx context.Context, ownerID, id string, forUpdate bool) (domain.Campaign, error)
}

// Service provides saved-encounter operations.
type Service struct {
	encounters encounterRepo
	campaigns  campaignRepo
	log        *slog.Logger
}

// NewService creates a new Encounter service.
func NewService(log *slog.Logger, encounters encounterRepo, campaigns campaignRepo) *Service {
	return &Service{
		encounters: encounters,
		campaigns:  campaigns,
		log:        log.With("service", "encounter"),
	}
}
