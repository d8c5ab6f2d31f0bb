package location

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/ctxutil"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

// List returns the user's locations. An empty campaignID lists all of them.
func (s *Service) List(ctx context.Context, campaignID string) ([]domain.Location, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	locations, err := s.locations.List(ctx, userID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locations, nil
}

// Create adds a location to one of the user's campaigns.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Location, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Location{}, domain.ErrUnauthenticated
	}

	if err := input.Validate(); err != nil {
		return domain.Location{}, err
	}

	if _, err := s.campaigns.Get(ctx, userID, input.CampaignID, false); err != nil {
		return domain.Location{}, fmt.Errorf("get campaign: %w", err)
	}

	loc, err := s.locations.Create(ctx, userID, domain.Location{
		CampaignID:   input.CampaignID,
		Name:         strings.TrimSpace(input.Name),
		Visited:      input.Visited,
		Region:       strings.TrimSpace(input.Region),
		LocationType: strings.TrimSpace(input.LocationType),
		Description:  input.Description,
		Notes:        input.Notes,
	})
	if err != nil {
		return domain.Location{}, fmt.Errorf("create location: %w", err)
	}

	s.log.InfoContext(ctx, "location created",
		slog.String("user_id", userID),
		slog.String("campaign_id", loc.CampaignID),
		slog.String("location_id", loc.ID),
	)

	return loc, nil
}

// Update applies a partial update to a location.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.Location, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Location{}, domain.ErrUnauthenticated
	}

	if err := input.Validate(); err != nil {
		return domain.Location{}, err
	}

	patch := input.Patch
	if name, ok := patch.Name.Get(); ok {
		patch.Name = optional.Some(strings.TrimSpace(name))
	}

	var updated domain.Location
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.locations.Get(txCtx, userID, input.ID, true)
		if getErr != nil {
			return fmt.Errorf("get location: %w", getErr)
		}

		var updateErr error
		updated, updateErr = s.locations.Update(txCtx, userID, patch.Apply(old))
		if updateErr != nil {
			return fmt.Errorf("update location: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return domain.Location{}, err
	}

	s.log.InfoContext(ctx, "location updated",
		slog.String("user_id", userID),
		slog.String("location_id", input.ID),
	)

	return updated, nil
}

// ToggleVisited flips the visited flag of a location.
func (s *Service) ToggleVisited(ctx context.Context, id string) (domain.Location, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Location{}, domain.ErrUnauthenticated
	}

	if id == "" {
		return domain.Location{}, domain.NewValidationError("id", "required")
	}

	loc, err := s.locations.ToggleVisited(ctx, userID, id)
	if err != nil {
		return domain.Location{}, fmt.Errorf("toggle visited: %w", err)
	}

	s.log.InfoContext(ctx, "location visited toggled",
		slog.String("location_id", id),
		slog.Bool("visited", loc.Visited),
	)

	return loc, nil
}

// Delete removes a location.
func (s *Service) Delete(ctx context.Context, id string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthenticated
	}

	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	if err := s.locations.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}

	s.log.InfoContext(ctx, "location deleted",
		slog.String("user_id", userID),
		slog.String("location_id", id),
	)

	return nil
}
