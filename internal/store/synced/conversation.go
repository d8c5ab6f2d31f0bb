package synced

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

// ConversationRemote is the remote surface for DM conversations.
type ConversationRemote interface {
	ListConversations(ctx context.Context, campaignID string) ([]domain.Conversation, error)
	CreateConversation(ctx context.Context, campaignID, title string) (domain.Conversation, error)
	RenameConversation(ctx context.Context, id, title string) (domain.Conversation, error)
	AppendMessage(ctx context.Context, id string, msg domain.ChatMessage) (domain.Conversation, error)
	DeleteConversation(ctx context.Context, id string) error
}

// ConversationStore mirrors DM conversations.
type ConversationStore struct {
	*core[domain.Conversation]
	remote ConversationRemote
}

func NewConversationStore(log *slog.Logger, remote ConversationRemote, ident Identity, clock clockwork.Clock) *ConversationStore {
	return &ConversationStore{
		core:   newCore[domain.Conversation]("conversations", log, ident, clock),
		remote: remote,
	}
}

func (s *ConversationStore) Initialize(ctx context.Context) error {
	return s.initialize(ctx, func(ctx context.Context) ([]domain.Conversation, error) {
		return s.remote.ListConversations(ctx, "")
	}, nil)
}

func (s *ConversationStore) InitializeByCampaign(ctx context.Context, campaignID string) error {
	return s.initializeByCampaign(ctx, campaignID, func(ctx context.Context) ([]domain.Conversation, error) {
		return s.remote.ListConversations(ctx, campaignID)
	}, nil)
}

func (s *ConversationStore) ByCampaign(campaignID string) []domain.Conversation {
	return domain.FilterByCampaign(s.All(), campaignID)
}

func (s *ConversationStore) Create(ctx context.Context, campaignID, title string) (domain.Conversation, error) {
	return s.upsert(ctx, "create conversation", func(ctx context.Context) (domain.Conversation, error) {
		return s.remote.CreateConversation(ctx, campaignID, title)
	})
}

func (s *ConversationStore) Rename(ctx context.Context, id, title string) (domain.Conversation, error) {
	return s.upsert(ctx, "rename conversation", func(ctx context.Context) (domain.Conversation, error) {
		return s.remote.RenameConversation(ctx, id, title)
	})
}

// AppendMessage adds a message and stores the conversation the server
// returns, which includes every message so far.
func (s *ConversationStore) AppendMessage(ctx context.Context, id string, msg domain.ChatMessage) (domain.Conversation, error) {
	return s.upsert(ctx, "append message", func(ctx context.Context) (domain.Conversation, error) {
		return s.remote.AppendMessage(ctx, id, msg)
	})
}

func (s *ConversationStore) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, "delete conversation", id, s.remote.DeleteConversation, nil)
}
