package npc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/ctxutil"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

// List returns the user's NPCs. An empty campaignID lists all of them.
func (s *Service) List(ctx context.Context, campaignID string) ([]domain.NPC, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	npcs, err := s.npcs.List(ctx, userID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list npcs: %w", err)
	}
	return npcs, nil
}

// Create adds an NPC to one of the user's campaigns.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.NPC, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.NPC{}, domain.ErrUnauthenticated
	}

	if err := input.Validate(); err != nil {
		return domain.NPC{}, err
	}

	if _, err := s.campaigns.Get(ctx, userID, input.CampaignID, false); err != nil {
		return domain.NPC{}, fmt.Errorf("get campaign: %w", err)
	}

	importance := input.Importance
	if importance == "" {
		importance = domain.ImportanceMinor
	}

	n, err := s.npcs.Create(ctx, userID, domain.NPC{
		CampaignID:    input.CampaignID,
		Name:          strings.TrimSpace(input.Name),
		Role:          strings.TrimSpace(input.Role),
		Importance:    importance,
		Personality:   input.Personality,
		Goals:         input.Goals,
		Relationships: input.Relationships,
		Faction:       nonEmpty(input.Faction),
		Location:      nonEmpty(input.Location),
		Race:          nonEmpty(input.Race),
		Class:         nonEmpty(input.Class),
	})
	if err != nil {
		return domain.NPC{}, fmt.Errorf("create npc: %w", err)
	}

	s.log.InfoContext(ctx, "npc created",
		slog.String("user_id", userID),
		slog.String("campaign_id", n.CampaignID),
		slog.String("npc_id", n.ID),
	)

	return n, nil
}

// Update applies a partial update to an NPC.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.NPC, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.NPC{}, domain.ErrUnauthenticated
	}

	if err := input.Validate(); err != nil {
		return domain.NPC{}, err
	}

	patch := input.Patch
	if name, ok := patch.Name.Get(); ok {
		patch.Name = optional.Some(strings.TrimSpace(name))
	}

	var updated domain.NPC
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.npcs.Get(txCtx, userID, input.ID, true)
		if getErr != nil {
			return fmt.Errorf("get npc: %w", getErr)
		}

		var updateErr error
		updated, updateErr = s.npcs.Update(txCtx, userID, patch.Apply(old))
		if updateErr != nil {
			return fmt.Errorf("update npc: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return domain.NPC{}, err
	}

	s.log.InfoContext(ctx, "npc updated",
		slog.String("user_id", userID),
		slog.String("npc_id", input.ID),
	)

	return updated, nil
}

// Delete removes an NPC.
func (s *Service) Delete(ctx context.Context, id string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthenticated
	}

	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	if err := s.npcs.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete npc: %w", err)
	}

	s.log.InfoContext(ctx, "npc deleted",
		slog.String("user_id", userID),
		slog.String("npc_id", id),
	)

	return nil
}

// nonEmpty turns Some("") into None.
func nonEmpty(o optional.Option[string]) optional.Option[string] {
	if v, ok := o.Get(); ok && strings.TrimSpace(v) != "" {
		return optional.Some(strings.TrimSpace(v))
	}
	return optional.None[string]()
}
