package persisted

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/store"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

type campaignsSnapshot struct {
	Campaigns        []domain.Campaign       `json:"campaigns"`
	ActiveCampaignID optional.Option[string] `json:"activeCampaignId"`
}

// CampaignsSnapshot is a consistent view of the campaign list together with
// the active selection.
type CampaignsSnapshot struct {
	Campaigns []domain.Campaign
	ActiveID  optional.Option[string]
}

// CampaignsStore keeps the local campaign list and the active campaign.
// The active id is None only when there are no campaigns.
type CampaignsStore struct {
	mu      sync.RWMutex
	items   *store.Collection[domain.Campaign]
	active  optional.Option[string]
	events  store.Emitter
	persist persister[campaignsSnapshot]
	log     *slog.Logger
}

// NewCampaigns rehydrates the store from storage, or from seed when storage
// is nil, empty or unreadable.
func NewCampaigns(log *slog.Logger, storage Storage, clock clockwork.Clock, seed Seed) *CampaignsStore {
	log = log.With("store", "campaigns")
	s := &CampaignsStore{
		items:   store.NewCollection[domain.Campaign](clock),
		persist: persister[campaignsSnapshot]{storage: storage, key: campaignsKey, log: log},
		log:     log,
	}

	snap, ok := s.persist.load()
	if !ok {
		snap = campaignsSnapshot{Campaigns: seed.Campaigns, ActiveCampaignID: seed.ActiveCampaignID}
	}
	s.items.Load(snap.Campaigns)
	s.active = snap.ActiveCampaignID
	if id, ok := s.active.Get(); !ok || !s.items.Has(id) {
		s.active = domain.ReassignActive(s.items.All(), s.active, "")
	}
	return s
}

// OnChange subscribes to store changes.
func (s *CampaignsStore) OnChange(fn func()) func() { return s.events.OnChange(fn) }

// Campaigns returns all campaigns in creation order.
func (s *CampaignsStore) Campaigns() []domain.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.All()
}

// Get returns one campaign.
func (s *CampaignsStore) Get(id string) optional.Option[domain.Campaign] {
	return s.items.Get(id)
}

// ActiveID returns the id of the active campaign.
func (s *CampaignsStore) ActiveID() optional.Option[string] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Active returns the active campaign.
func (s *CampaignsStore) Active() optional.Option[domain.Campaign] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.active.Get()
	if !ok {
		return optional.None[domain.Campaign]()
	}
	return s.items.Get(id)
}

// Snapshot returns the campaigns and active id as one consistent view.
func (s *CampaignsStore) Snapshot() CampaignsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CampaignsSnapshot{Campaigns: s.items.All(), ActiveID: s.active}
}

// Create adds a campaign. The first campaign becomes active.
func (s *CampaignsStore) Create(name, description string) (domain.Campaign, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Campaign{}, domain.NewValidationError("name", "required")
	}

	s.mu.Lock()
	c := s.items.Create(domain.Campaign{Name: name, Description: strings.TrimSpace(description)})
	if s.active.IsNone() {
		s.active = optional.Some(c.ID)
	}
	s.saveLocked()
	s.mu.Unlock()

	s.log.Info("campaign created", slog.String("campaign_id", c.ID))
	s.events.Notify()
	return c, nil
}

// Update applies patch to the campaign with the given id.
func (s *CampaignsStore) Update(id string, patch domain.CampaignPatch) (domain.Campaign, error) {
	if v, ok := patch.Name.Get(); ok && strings.TrimSpace(v) == "" {
		return domain.Campaign{}, domain.NewValidationError("name", "required")
	}

	s.mu.Lock()
	c, err := s.items.Update(id, patch.Apply)
	if err != nil {
		s.mu.Unlock()
		return domain.Campaign{}, fmt.Errorf("update campaign: %w", err)
	}
	s.saveLocked()
	s.mu.Unlock()

	s.events.Notify()
	return c, nil
}

// Delete removes a campaign. If it was active, another campaign becomes
// active in the same step, or none when it was the last one.
func (s *CampaignsStore) Delete(id string) {
	s.mu.Lock()
	if !s.items.Delete(id) {
		s.mu.Unlock()
		return
	}
	s.active = domain.ReassignActive(s.items.All(), s.active, id)
	s.saveLocked()
	s.mu.Unlock()

	s.log.Info("campaign deleted", slog.String("campaign_id", id))
	s.events.Notify()
}

// SetActive selects the active campaign.
func (s *CampaignsStore) SetActive(id string) error {
	s.mu.Lock()
	if !s.items.Has(id) {
		s.mu.Unlock()
		return fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	if cur, ok := s.active.Get(); ok && cur == id {
		s.mu.Unlock()
		return nil
	}
	s.active = optional.Some(id)
	s.saveLocked()
	s.mu.Unlock()

	s.events.Notify()
	return nil
}

func (s *CampaignsStore) saveLocked() {
	s.persist.save(campaignsSnapshot{Campaigns: s.items.All(), ActiveCampaignID: s.active})
}
