package synced

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
)

// EncounterRemote is the remote surface for saved encounters.
type EncounterRemote interface {
	ListEncounters(ctx context.Context, campaignID string) ([]domain.SavedEncounter, error)
	SaveEncounter(ctx context.Context, enc domain.SavedEncounter) (domain.SavedEncounter, error)
	RenameEncounter(ctx context.Context, id, name string) (domain.SavedEncounter, error)
	DeleteEncounter(ctx context.Context, id string) error
}

// EncounterStore mirrors saved encounters.
type EncounterStore struct {
	*core[domain.SavedEncounter]
	remote EncounterRemote
}

func NewEncounterStore(log *slog.Logger, remote EncounterRemote, ident Identity, clock clockwork.Clock) *EncounterStore {
	return &EncounterStore{
		core:   newCore[domain.SavedEncounter]("encounters", log, ident, clock),
		remote: remote,
	}
}

func (s *EncounterStore) Initialize(ctx context.Context) error {
	return s.initialize(ctx, func(ctx context.Context) ([]domain.SavedEncounter, error) {
		return s.remote.ListEncounters(ctx, "")
	}, nil)
}

func (s *EncounterStore) InitializeByCampaign(ctx context.Context, campaignID string) error {
	return s.initializeByCampaign(ctx, campaignID, func(ctx context.Context) ([]domain.SavedEncounter, error) {
		return s.remote.ListEncounters(ctx, campaignID)
	}, nil)
}

func (s *EncounterStore) ByCampaign(campaignID string) []domain.SavedEncounter {
	return domain.FilterByCampaign(s.All(), campaignID)
}

// Save stores a snapshot taken from the combat tracker.
func (s *EncounterStore) Save(ctx context.Context, enc domain.SavedEncounter) (domain.SavedEncounter, error) {
	enc.Combatants = domain.CloneCombatants(enc.Combatants)
	return s.upsert(ctx, "save encounter", func(ctx context.Context) (domain.SavedEncounter, error) {
		return s.remote.SaveEncounter(ctx, enc)
	})
}

func (s *EncounterStore) Rename(ctx context.Context, id, name string) (domain.SavedEncounter, error) {
	return s.upsert(ctx, "rename encounter", func(ctx context.Context) (domain.SavedEncounter, error) {
		return s.remote.RenameEncounter(ctx, id, name)
	})
}

func (s *EncounterStore) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, "delete encounter", id, s.remote.DeleteEncounter, nil)
}
