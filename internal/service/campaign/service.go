package campaign

import (
	"context"
	"log/slog"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

type campaignRepo interface {
	List(ctx context.Context, ownerID string) ([]domain.Campaign, error)
	Get(ctx context.Context, ownerID, id string, forUpdate bool) (domain.Campaign, error)
	Create(ctx context.Context, c domain.Campaign) (domain.Campaign, error)
	Update(ctx context.Context, c domain.Campaign) (domain.Campaign, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides campaign management operations.
type Service struct {
	campaigns campaignRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Campaign service.
func NewService(log *slog.Logger, campaigns campaignRepo, tx txManager) *Service {
	return &Service{
		campaigns: campaigns,
		tx:        tx,
		log:       log.With("service", "campaign"),
	}
}
