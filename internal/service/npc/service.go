package npc

import (
	"context"
	"log/slog"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

type npcRepo interface {
	List(ctx context.Context, ownerID, campaignID string) ([]domain.NPC, error)
	Get(ctx context.Context, ownerID, id string, forUpdate bool) (domain.NPC, error)
	Create(ctx context.Context, ownerID string, n domain.NPC) (domain.NPC, error)
	Update(ctx context.Context, ownerID string, n domain.NPC) (domain.NPC, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type campaignRepo interface {
	Get(ctx context.Context, ownerID, id string, forUpdate bool) (domain.Campaign, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides NPC management operations.
type Service struct {
	npcs      npcRepo
	campaigns campaignRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new NPC service.
func NewService(log *slog.Logger, npcs npcRepo, campaigns campaignRepo, tx txManager) *Service {
	return &Service{
		npcs:      npcs,
		campaigns: campaigns,
		tx:        tx,
		log:       log.With("service", "npc"),
	}
}
