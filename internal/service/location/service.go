package location

import (
	"context"
	"log/slog"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

type locationRepo interface {
	List(ctx context.Context, ownerID, campaignID string) ([]domain.Location, error)
	Get(ctx context.Context, ownerID, id string, forUpdate bool) (domain.Location, error)
	Create(ctx context.Context, ownerID string, l domain.Location) (domain.Location, error)
	Update(ctx context.Context, ownerID string, l domain.Location) (domain.Location, error)
	ToggleVisited(ctx context.Context, ownerID, id string) (domain.Location, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// campaignRepo is used to check that a parent campaign belongs to the caller.
type campaignRepo interface {
	Get(ctx context.Context, ownerID, id string, forUpdate bool) (domain.Campaign, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides location management operations.
type Service struct {
	locations locationRepo
	campaigns campaignRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Location service.
func NewService(log *slog.Logger, locations locationRepo, campaigns campaignRepo, tx txManager) *Service {
	return &Service{
		locations: locations,
		campaigns: campaigns,
		tx:        tx,
		log:       log.With("service", "location"),
	}
}
