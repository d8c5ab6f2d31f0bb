package synced

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

// LocationRemote is the remote CRUD surface for locations. An empty
// campaignID lists every location of the user.
type LocationRemote interface {
	ListLocations(ctx context.Context, campaignID string) ([]domain.Location, error)
	CreateLocation(ctx context.Context, loc domain.Location) (domain.Location, error)
	UpdateLocation(ctx context.Context, id string, patch domain.LocationPatch) (domain.Location, error)
	DeleteLocation(ctx context.Context, id string) error
}

// WorldStore mirrors world locations.
type WorldStore struct {
	*core[domain.Location]
	remote LocationRemote
}

func NewWorldStore(log *slog.Logger, remote LocationRemote, ident Identity, clock clockwork.Clock) *WorldStore {
	return &WorldStore{
		core:   newCore[domain.Location]("world", log, ident, clock),
		remote: remote,
	}
}

// Initialize fetches every location once.
func (s *WorldStore) Initialize(ctx context.Context) error {
	return s.initialize(ctx, func(ctx context.Context) ([]domain.Location, error) {
		return s.remote.ListLocations(ctx, "")
	}, nil)
}

// InitializeByCampaign replaces the snapshot with one campaign's locations.
func (s *WorldStore) InitializeByCampaign(ctx context.Context, campaignID string) error {
	return s.initializeByCampaign(ctx, campaignID, func(ctx context.Context) ([]domain.Location, error) {
		return s.remote.ListLocations(ctx, campaignID)
	}, nil)
}

// ByCampaign returns the loaded locations of one campaign.
func (s *WorldStore) ByCampaign(campaignID string) []domain.Location {
	return domain.FilterByCampaign(s.All(), campaignID)
}

func (s *WorldStore) CreateLocation(ctx context.Context, loc domain.Location) (domain.Location, error) {
	return s.upsert(ctx, "create location", func(ctx context.Context) (domain.Location, error) {
		return s.remote.CreateLocation(ctx, loc)
	})
}

func (s *WorldStore) UpdateLocation(ctx context.Context, id string, patch domain.LocationPatch) (domain.Location, error) {
	return s.upsert(ctx, "update location", func(ctx context.Context) (domain.Location, error) {
		return s.remote.UpdateLocation(ctx, id, patch)
	})
}

func (s *WorldStore) DeleteLocation(ctx context.Context, id string) error {
	return s.remove(ctx, "delete location", id, s.remote.DeleteLocation, nil)
}

// ToggleVisited flips the visited flag of a loaded location.
func (s *WorldStore) ToggleVisited(ctx context.Context, id string) (domain.Location, error) {
	loc, ok := s.Get(id).Get()
	if !ok {
		err := fmt.Errorf("location %s: %w", id, domain.ErrNotFound)
		s.setErr(message("toggle visited", err))
		s.events.Notify()
		return domain.Location{}, err
	}
	return s.upsert(ctx, "toggle visited", func(ctx context.Context) (domain.Location, error) {
		return s.remote.UpdateLocation(ctx, id, domain.LocationPatch{Visited: optional.Some(!loc.Visited)})
	})
}
