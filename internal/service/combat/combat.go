package combat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/encounter"
	tracker "github.com/lmdrew96/FeyForge-sub001/internal/store/combat"
)

// State returns the caller's tracker.
func (s *Service) State(ctx context.Context) (tracker.State, error) {
	t, err := s.trackerFor(ctx)
	if err != nil {
		return tracker.State{}, err
	}
	return t.State(), nil
}

// Add inserts a combatant in initiative order.
func (s *Service) Add(ctx context.Context, input AddInput) (domain.Combatant, error) {
	t, err := s.trackerFor(ctx)
	if err != nil {
		return domain.Combatant{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Combatant{}, err
	}

	return t.Add(domain.Combatant{
		Name:       input.Name,
		Initiative: input.Initiative,
		CurrentHP:  input.HP(),
		MaxHP:      input.MaxHP,
		IsPC:       input.IsPC,
		Conditions: input.Conditions,
	})
}

// Update applies a partial change to one combatant.
func (s *Service) Update(ctx context.Context, id string, patch tracker.Patch) (domain.Combatant, error) {
	t, err := s.trackerFor(ctx)
	if err != nil {
		return domain.Combatant{}, err
	}
	return t.Update(id, patch)
}

// Damage lowers a combatant's HP, never below zero.
func (s *Service) Damage(ctx context.Context, id string, amount int) (domain.Combatant, error) {
	t, err := s.trackerFor(ctx)
	if err != nil {
		return domain.Combatant{}, err
	}
	if err := validateAmount(amount); err != nil {
		return domain.Combatant{}, err
	}
	return t.Damage(id, amount)
}

// Heal raises a combatant's HP, never above max.
func (s *Service) Heal(ctx context.Context, id string, amount int) (domain.Combatant, error) {
	t, err := s.trackerFor(ctx)
	if err != nil {
		return domain.Combatant{}, err
	}
	if err := validateAmount(amount); err != nil {
		return domain.Combatant{}, err
	}
	return t.Heal(id, amount)
}

// Remove drops a combatant. Unknown ids are ignored.
func (s *Service) Remove(ctx context.Context, id string) (tracker.State, error) {
	t, err := s.trackerFor(ctx)
	if err != nil {
		return tracker.State{}, err
	}
	t.Remove(id)
	return t.State(), nil
}

// Reorder moves a combatant to index.
func (s *Service) Reorder(ctx context.Context, id string, index int) (tracker.State, error) {
	t, err := s.trackerFor(ctx)
	if err != nil {
		return tracker.State{}, err
	}
	if err := t.Reorder(id, index); err != nil {
		return tracker.State{}, err
	}
	return t.State(), nil
}

// Step is a round or turn movement.
type Step string

const (
	StepSort       Step = "sort"
	StepClear      Step = "clear"
	StepNextRound  Step = "next-round"
	StepPrevRound  Step = "prev-round"
	StepResetRound Step = "reset-round"
	StepNextTurn   Step = "next-turn"
	StepPrevTurn   Step = "prev-turn"
)

// Apply performs step on the caller's tracker.
func (s *Service) Apply(ctx context.Context, step Step) (tracker.State, error) {
	t, err := s.trackerFor(ctx)
	if err != nil {
		return tracker.State{}, err
	}

	switch step {
	case StepSort:
		t.SortByInitiative()
	case StepClear:
		t.Clear()
	case StepNextRound:
		t.IncrementRound()
	case StepPrevRound:
		t.DecrementRound()
	case StepResetRound:
		t.ResetRound()
	case StepNextTurn:
		t.NextTurn()
	case StepPrevTurn:
		t.PreviousTurn()
	default:
		return tracker.State{}, domain.NewValidationError("step", "unknown step")
	}
	return t.State(), nil
}

// Save stores the current fight as a saved encounter.
func (s *Service) Save(ctx context.Context, input SaveInput) (domain.SavedEncounter, error) {
	t, err := s.trackerFor(ctx)
	if err != nil {
		return domain.SavedEncounter{}, err
	}

	snap := t.SaveEncounter(input.Name, input.CampaignID)
	enc, err := s.encounters.Save(ctx, encounter.SaveInput{
		CampaignID: snap.CampaignID,
		Name:       snap.Name,
		Combatants: snap.Combatants,
		Round:      snap.Round,
	})
	if err != nil {
		return domain.SavedEncounter{}, fmt.Errorf("save combat: %w", err)
	}
	return enc, nil
}

// Load replaces the caller's fight with a saved encounter.
func (s *Service) Load(ctx context.Context, encounterID string) (tracker.State, error) {
	t, err := s.trackerFor(ctx)
	if err != nil {
		return tracker.State{}, err
	}

	enc, err := s.encounters.Get(ctx, encounterID)
	if err != nil {
		return tracker.State{}, fmt.Errorf("load combat: %w", err)
	}
	t.LoadEncounter(enc)

	s.log.InfoContext(ctx, "encounter loaded",
		slog.String("encounter_id", enc.ID),
		slog.Int("combatants", len(enc.Combatants)),
	)
	return t.State(), nil
}
