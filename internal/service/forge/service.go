// Package forge wraps the text generator with the timeouts, prompts and
// error taxonomy of the AI routes: backstories, NPCs, loot and DM chat.
package forge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/generation"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/conversation"
)

const defaultTimeout = 45 * time.Second

// conversationStore is the part of the conversation service chat needs.
type conversationStore interface {
	AppendMessage(ctx context.Context, input conversation.AppendMessageInput) (domain.Conversation, error)
}

// Service provides AI generation operations.
type Service struct {
	gen           generation.Generator
	conversations conversationStore
	timeout       time.Duration
	maxTokens     int
	log           *slog.Logger
}

// NewService creates a new Forge service. A zero timeout means 45s.
func NewService(
	log *slog.Logger,
	gen generation.Generator,
	conversations conversationStore,
	timeout time.Duration,
	maxTokens int,
) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{
		gen:           gen,
		conversations: conversations,
		timeout:       timeout,
		maxTokens:     maxTokens,
		log:           log.With("service", "forge"),
	}
}

// classify maps a generator error onto the domain taxonomy. parent is the
// caller's context and bounded the one carrying the route timeout.
func classify(parent, bounded context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case parent.Err() != nil:
		return fmt.Errorf("%w: %v", domain.ErrStreamAborted, parent.Err())
	case errors.Is(bounded.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded):
		return domain.ErrGenerationTimeout
	case errors.Is(err, domain.ErrMalformedResponse), errors.Is(err, domain.ErrValidation):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
}
