package forge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/generation"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/conversation"
	"github.com/lmdrew96/FeyForge-sub001/pkg/ctxutil"
)

// Chat streams the assistant's reply to one user message through emit.
//
// When the caller cancels ctx the upstream request is cancelled with it and
// the result is marked Aborted together with ErrStreamAborted. With a
// ConversationID the user message is appended before generation and the
// reply after a completed stream; an aborted reply is not stored.
func (s *Service) Chat(ctx context.Context, input ChatInput, emit func(delta string) error) (ChatResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return ChatResult{}, domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return ChatResult{}, err
	}

	history := input.History
	if input.ConversationID != "" {
		conv, err := s.conversations.AppendMessage(ctx, conversation.AppendMessageInput{
			ConversationID: input.ConversationID,
			Role:           domain.ChatRoleUser,
			Content:        input.Message,
		})
		if err != nil {
			return ChatResult{}, fmt.Errorf("append user message: %w", err)
		}
		history = conv.Messages
	} else {
		history = append(history[:len(history):len(history)], domain.ChatMessage{
			Role:    domain.ChatRoleUser,
			Content: input.Message,
		})
	}
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}

	bounded, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var reply strings.Builder
	err := s.gen.StreamText(bounded, generation.ChatRequest{
		System:    chatSystemPrompt(input.CampaignName),
		Messages:  history,
		MaxTokens: s.maxTokens,
	}, func(delta string) error {
		reply.WriteString(delta)
		return emit(delta)
	})

	result := ChatResult{Reply: reply.String()}
	if err = classify(ctx, bounded, err); err != nil {
		if errors.Is(err, domain.ErrStreamAborted) {
			result.Aborted = true
			s.log.InfoContext(ctx, "chat aborted by client", slog.Int("partial_len", reply.Len()))
		} else {
			s.log.WarnContext(ctx, "chat generation failed", slog.String("error", err.Error()))
		}
		return result, err
	}
	result.Completed = true

	if input.ConversationID != "" && result.Reply != "" {
		if _, err := s.conversations.AppendMessage(ctx, conversation.AppendMessageInput{
			ConversationID: input.ConversationID,
			Role:           domain.ChatRoleAssistant,
			Content:        result.Reply,
		}); err != nil {
			return result, fmt.Errorf("append assistant message: %w", err)
		}
	}

	s.log.InfoContext(ctx, "chat completed", slog.Int("reply_len", len(result.Reply)))
	return result, nil
}
