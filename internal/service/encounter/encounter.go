package encounter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/ctxutil"
)

// List returns the user's saved encounters. An empty campaignID lists all of them.
func (s *Service) List(ctx context.Context, campaignID string) ([]domain.SavedEncounter, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	encs, err := s.encounters.List(ctx, userID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list encounters: %w", err)
	}
	return encs, nil
}

// Get returns one saved encounter.
func (s *Service) Get(ctx context.Context, id string) (domain.SavedEncounter, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.SavedEncounter{}, domain.ErrUnauthenticated
	}

	if id == "" {
		return domain.SavedEncounter{}, domain.NewValidationError("id", "required")
	}

	enc, err := s.encounters.Get(ctx, userID, id)
	if err != nil {
		return domain.SavedEncounter{}, fmt.Errorf("get encounter: %w", err)
	}
	return enc, nil
}

// Save stores a deep copy of the given combat under a name.
func (s *Service) Save(ctx context.Context, input SaveInput) (domain.SavedEncounter, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.SavedEncounter{}, domain.ErrUnauthenticated
	}

	if err := input.Validate(); err != nil {
		return domain.SavedEncounter{}, err
	}

	if _, err := s.campaigns.Get(ctx, userID, input.CampaignID, false); err != nil {
		return domain.SavedEncounter{}, fmt.Errorf("get campaign: %w", err)
	}

	enc, err := s.encounters.Create(ctx, userID, domain.SavedEncounter{
		CampaignID: input.CampaignID,
		Name:       strings.TrimSpace(input.Name),
		Combatants: domain.CloneCombatants(input.Combatants),
		Round:      input.Round,
	})
	if err != nil {
		return domain.SavedEncounter{}, fmt.Errorf("save encounter: %w", err)
	}

	s.log.InfoContext(ctx, "encounter saved",
		slog.String("user_id", userID),
		slog.String("encounter_id", enc.ID),
		slog.Int("combatants", len(enc.Combatants)),
		slog.Int("round", enc.Round),
	)

	return enc, nil
}

// Rename changes a saved encounter's name.
func (s *Service) Rename(ctx context.Context, input RenameInput) (domain.SavedEncounter, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.SavedEncounter{}, domain.ErrUnauthenticated
	}

	if err := input.Validate(); err != nil {
		return domain.SavedEncounter{}, err
	}

	enc, err := s.encounters.Rename(ctx, userID, input.ID, strings.TrimSpace(input.Name))
	if err != nil {
		return domain.SavedEncounter{}, fmt.Errorf("rename encounter: %w", err)
	}
	return enc, nil
}

// Delete removes a saved encounter.
func (s *Service) Delete(ctx context.Context, id string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthenticated
	}

	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	if err := s.encounters.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete encounter: %w", err)
	}

	s.log.InfoContext(ctx, "encounter deleted", slog.String("encounter_id", id))
	return nil
}
