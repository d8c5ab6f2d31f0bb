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

type npcsSnapshot struct {
	NPCs []domain.NPC `json:"npcs"`
}

// NPCsStore keeps NPCs for every campaign. Views per campaign are derived
// with domain.FilterByCampaign.
type NPCsStore struct {
	mu      sync.Mutex
	items   *store.Collection[domain.NPC]
	events  store.Emitter
	persist persister[npcsSnapshot]
	log     *slog.Logger
}

// NewNPCs rehydrates the store from storage or seed.
func NewNPCs(log *slog.Logger, storage Storage, clock clockwork.Clock, seed Seed) *NPCsStore {
	log = log.With("store", "npcs")
	s := &NPCsStore{
		items:   store.NewCollection[domain.NPC](clock),
		persist: persister[npcsSnapshot]{storage: storage, key: npcsKey, log: log},
		log:     log,
	}
	snap, ok := s.persist.load()
	if !ok {
		snap = npcsSnapshot{NPCs: seed.NPCs}
	}
	s.items.Load(snap.NPCs)
	return s
}

func (s *NPCsStore) OnChange(fn func()) func() { return s.events.OnChange(fn) }

func (s *NPCsStore) All() []domain.NPC { return s.items.All() }

func (s *NPCsStore) Get(id string) optional.Option[domain.NPC] { return s.items.Get(id) }

// ByCampaign returns the NPCs of one campaign in creation order.
func (s *NPCsStore) ByCampaign(campaignID string) []domain.NPC {
	return domain.FilterByCampaign(s.items.All(), campaignID)
}

// Create validates npc and stores it. Identity fields on npc are ignored.
func (s *NPCsStore) Create(npc domain.NPC) (domain.NPC, error) {
	npc.Name = strings.TrimSpace(npc.Name)
	if npc.Importance == "" {
		npc.Importance = domain.ImportanceMinor
	}
	if err := validateNPC(npc); err != nil {
		return domain.NPC{}, err
	}

	s.mu.Lock()
	created := s.items.Create(npc)
	s.saveLocked()
	s.mu.Unlock()

	s.log.Info("npc created", slog.String("npc_id", created.ID), slog.String("campaign_id", created.CampaignID))
	s.events.Notify()
	return created, nil
}

// Update applies patch to an NPC.
func (s *NPCsStore) Update(id string, patch domain.NPCPatch) (domain.NPC, error) {
	if v, ok := patch.Name.Get(); ok && strings.TrimSpace(v) == "" {
		return domain.NPC{}, domain.NewValidationError("name", "required")
	}
	if v, ok := patch.Importance.Get(); ok && !v.IsValid() {
		return domain.NPC{}, domain.NewValidationError("importance", "must be minor, major or key")
	}

	s.mu.Lock()
	updated, err := s.items.Update(id, patch.Apply)
	if err != nil {
		s.mu.Unlock()
		return domain.NPC{}, fmt.Errorf("update npc: %w", err)
	}
	s.saveLocked()
	s.mu.Unlock()

	s.events.Notify()
	return updated, nil
}

// Delete removes an NPC. Absent ids are ignored.
func (s *NPCsStore) Delete(id string) {
	s.mu.Lock()
	removed := s.items.Delete(id)
	if removed {
		s.saveLocked()
	}
	s.mu.Unlock()

	if removed {
		s.events.Notify()
	}
}

// PurgeCampaign removes every NPC of a deleted campaign.
func (s *NPCsStore) PurgeCampaign(campaignID string) int {
	s.mu.Lock()
	n := s.items.DeleteFunc(func(npc domain.NPC) bool { return npc.CampaignID == campaignID })
	if n > 0 {
		s.saveLocked()
	}
	s.mu.Unlock()

	if n > 0 {
		s.log.Info("campaign npcs purged", slog.String("campaign_id", campaignID), slog.Int("count", n))
		s.events.Notify()
	}
	return n
}

func (s *NPCsStore) saveLocked() {
	s.persist.save(npcsSnapshot{NPCs: s.items.All()})
}

func validateNPC(n domain.NPC) error {
	var errs []domain.FieldError
	if strings.TrimSpace(n.CampaignID) == "" {
		errs = append(errs, domain.FieldError{Field: "campaignId", Message: "required"})
	}
	if n.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if !n.Importance.IsValid() {
		errs = append(errs, domain.FieldError{Field: "importance", Message: "must be minor, major or key"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
