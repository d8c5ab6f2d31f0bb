package campaign

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/ctxutil"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

// List returns the authenticated user's campaigns, oldest first.
func (s *Service) List(ctx context.Context) ([]domain.Campaign, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	campaigns, err := s.campaigns.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

// Get returns one campaign owned by the authenticated user.
func (s *Service) Get(ctx context.Context, id string) (domain.Campaign, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Campaign{}, domain.ErrUnauthenticated
	}

	c, err := s.campaigns.Get(ctx, userID, id, false)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("get campaign: %w", err)
	}
	return c, nil
}

// Create creates a new campaign for the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Campaign, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Campaign{}, domain.ErrUnauthenticated
	}

	if err := input.Validate(); err != nil {
		return domain.Campaign{}, err
	}

	c, err := s.campaigns.Create(ctx, domain.Campaign{
		OwnerID:     userID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
	})
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("create campaign: %w", err)
	}

	s.log.InfoContext(ctx, "campaign created",
		slog.String("user_id", userID),
		slog.String("campaign_id", c.ID),
	)

	return c, nil
}

// Update applies a partial update to a campaign.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.Campaign, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Campaign{}, domain.ErrUnauthenticated
	}

	if err := input.Validate(); err != nil {
		return domain.Campaign{}, err
	}

	patch := input.Patch
	if name, ok := patch.Name.Get(); ok {
		patch.Name = optional.Some(strings.TrimSpace(name))
	}

	var updated domain.Campaign
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.campaigns.Get(txCtx, userID, input.ID, true)
		if getErr != nil {
			return fmt.Errorf("get campaign: %w", getErr)
		}

		var updateErr error
		updated, updateErr = s.campaigns.Update(txCtx, patch.Apply(old))
		if updateErr != nil {
			return fmt.Errorf("update campaign: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return domain.Campaign{}, err
	}

	s.log.InfoContext(ctx, "campaign updated",
		slog.String("user_id", userID),
		slog.String("campaign_id", input.ID),
	)

	return updated, nil
}

// Delete deletes a campaign together with everything that belongs to it.
func (s *Service) Delete(ctx context.Context, id string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthenticated
	}

	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	if err := s.campaigns.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}

	s.log.InfoContext(ctx, "campaign deleted",
		slog.String("user_id", userID),
		slog.String("campaign_id", id),
	)

	return nil
}
