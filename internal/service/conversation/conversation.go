package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/ctxutil"
)

// List returns the user's conversations. An empty campaignID lists all of them.
func (s *Service) List(ctx context.Context, campaignID string) ([]domain.Conversation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	convs, err := s.conversations.List(ctx, userID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return convs, nil
}

// Get returns one conversation with its messages.
func (s *Service) Get(ctx context.Context, id string) (domain.Conversation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Conversation{}, domain.ErrUnauthenticated
	}

	c, err := s.conversations.Get(ctx, userID, id, false)
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("get conversation: %w", err)
	}
	return c, nil
}

// Create starts an empty conversation in one of the user's campaigns.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Conversation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Conversation{}, domain.ErrUnauthenticated
	}

	if err := input.Validate(); err != nil {
		return domain.Conversation{}, err
	}

	if _, err := s.campaigns.Get(ctx, userID, input.CampaignID, false); err != nil {
		return domain.Conversation{}, fmt.Errorf("get campaign: %w", err)
	}

	c, err := s.conversations.Create(ctx, userID, input.CampaignID, strings.TrimSpace(input.Title))
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("create conversation: %w", err)
	}

	s.log.InfoContext(ctx, "conversation created",
		slog.String("user_id", userID),
		slog.String("conversation_id", c.ID),
	)

	return c, nil
}

// Rename changes a conversation's title.
func (s *Service) Rename(ctx context.Context, input RenameInput) (domain.Conversation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Conversation{}, domain.ErrUnauthenticated
	}

	if err := input.Validate(); err != nil {
		return domain.Conversation{}, err
	}

	c, err := s.conversations.Rename(ctx, userID, input.ID, strings.TrimSpace(input.Title))
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("rename conversation: %w", err)
	}

	s.log.InfoContext(ctx, "conversation renamed", slog.String("conversation_id", input.ID))
	return c, nil
}

// AppendMessage adds a message to the end of a conversation. The row is
// locked for the read-modify-write so concurrent appends never drop a message.
func (s *Service) AppendMessage(ctx context.Context, input AppendMessageInput) (domain.Conversation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Conversation{}, domain.ErrUnauthenticated
	}

	if err := input.Validate(); err != nil {
		return domain.Conversation{}, err
	}

	msg := domain.ChatMessage{
		Role:      input.Role,
		Content:   input.Content,
		CreatedAt: s.clock.Now().UTC(),
	}

	var updated domain.Conversation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		conv, getErr := s.conversations.Get(txCtx, userID, input.ConversationID, true)
		if getErr != nil {
			return fmt.Errorf("get conversation: %w", getErr)
		}
		if len(conv.Messages) >= MaxMessages {
			return domain.NewValidationError("messages", fmt.Sprintf("limit reached (max %d)", MaxMessages))
		}

		msgs := append(conv.Messages[:len(conv.Messages):len(conv.Messages)], msg)

		var setErr error
		updated, setErr = s.conversations.SetMessages(txCtx, userID, input.ConversationID, msgs)
		if setErr != nil {
			return fmt.Errorf("set messages: %w", setErr)
		}
		return nil
	})
	if err != nil {
		return domain.Conversation{}, err
	}

	s.log.DebugContext(ctx, "message appended",
		slog.String("conversation_id", input.ConversationID),
		slog.String("role", string(input.Role)),
		slog.Int("messages", len(updated.Messages)),
	)

	return updated, nil
}

// Delete removes a conversation.
func (s *Service) Delete(ctx context.Context, id string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthenticated
	}

	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	if err := s.conversations.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}

	s.log.InfoContext(ctx, "conversation deleted",
		slog.String("user_id", userID),
		slog.String("conversation_id", id),
	)

	return nil
}
