package conversation

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

type conversationRepo interface {
	List(ctx context.Context, ownerID, campaignID string) ([]domain.Conversation, error)
	Get(ctx context.Context, ownerID, id string, forUpdate bool) (domain.Conversation, error)
	Create(ctx context.Context, ownerID, campaignID, title string) (domain.Conversation, error)
	Rename(ctx context.Context, ownerID, id, title string) (domain.Conversation, error)
	SetMessages(ctx context.Context, ownerID, id string, msgs []domain.ChatMessage) (domain.Conversation, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type campaignRepo interface {
	Get(ctx context.Context, ownerID, id string, forUpdate bool) (domain.Campaign, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MaxMessages caps the length of a stored conversation.
const MaxMessages = 500

// Service provides DM-assistant conversation operations.
type Service struct {
	conversations conversationRepo
	campaigns     campaignRepo
	tx            txManager
	clock         clockwork.Clock
	log           *slog.Logger
}

// NewService creates a new Conversation service.
func NewService(
	log *slog.Logger,
	conversations conversationRepo,
	campaigns campaignRepo,
	tx txManager,
	clock clockwork.Clock,
) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		conversations: conversations,
		campaigns:     campaigns,
		tx:            tx,
		clock:         clock,
		log:           log.With("service", "conversation"),
	}
}
