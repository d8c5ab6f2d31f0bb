package synced

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

// CampaignRemote is the remote CRUD surface the campaign store writes to.
type CampaignRemote interface {
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	CreateCampaign(ctx context.Context, name, description string) (domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error
}

// CampaignStore mirrors the user's campaigns and tracks the active one.
type CampaignStore struct {
	*core[domain.Campaign]
	remote CampaignRemote
	active optional.Option[string] // guarded by core.mu
}

// NewCampaignStore creates an uninitialized campaign store.
func NewCampaignStore(log *slog.Logger, remote CampaignRemote, ident Identity, clock clockwork.Clock) *CampaignStore {
	return &CampaignStore{
		core:   newCore[domain.Campaign]("campaigns", log, ident, clock),
		remote: remote,
	}
}

// Initialize fetches the campaign list once.
func (s *CampaignStore) Initialize(ctx context.Context) error {
	return s.initialize(ctx, s.remote.ListCampaigns, s.repairActive)
}

// Refresh fetches the campaign list even when already loaded.
func (s *CampaignStore) Refresh(ctx context.Context) error {
	return s.initializeByCampaign(ctx, "", s.remote.ListCampaigns, s.repairActive)
}

// ActiveID returns the active campaign id.
func (s *CampaignStore) ActiveID() optional.Option[string] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Active returns the active campaign.
func (s *CampaignStore) Active() optional.Option[domain.Campaign] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.active.Get()
	if !ok {
		return optional.None[domain.Campaign]()
	}
	return s.items.Get(id)
}

// SetActive selects a loaded campaign. Selection is local state only.
func (s *CampaignStore) SetActive(id string) error {
	s.mu.Lock()
	if !s.items.Has(id) {
		s.mu.Unlock()
		return fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	s.active = optional.Some(id)
	s.mu.Unlock()
	s.events.Notify()
	return nil
}

// Create writes a new campaign through. The first campaign becomes active.
func (s *CampaignStore) Create(ctx context.Context, name, description string) (domain.Campaign, error) {
	var created domain.Campaign
	err := s.write(ctx, "create campaign", func(ctx context.Context) error {
		var err error
		created, err = s.remote.CreateCampaign(ctx, name, description)
		return err
	}, func() {
		s.items.Put(created)
		if s.active.IsNone() {
			s.active = optional.Some(created.ID)
		}
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	return created, nil
}

// Update writes a campaign change through.
func (s *CampaignStore) Update(ctx context.Context, id string, patch domain.CampaignPatch) (domain.Campaign, error) {
	return s.upsert(ctx, "update campaign", func(ctx context.Context) (domain.Campaign, error) {
		return s.remote.UpdateCampaign(ctx, id, patch)
	})
}

// Delete writes a deletion through and moves the active selection off the
// deleted campaign in the same step.
func (s *CampaignStore) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, "delete campaign", id, s.remote.DeleteCampaign, func() {
		s.active = domain.ReassignActive(s.items.All(), s.active, id)
	})
}

// repairActive runs under core.mu after a load.
func (s *CampaignStore) repairActive([]domain.Campaign) {
	s.active = domain.ReassignActive(s.items.All(), s.active, "")
}
