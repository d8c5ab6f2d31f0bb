// Package combat implements the live initiative tracker. Its state is
// in-memory only and starts fresh with every Store.
package combat

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/store"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

// entry is a combatant plus its insertion sequence, used to break initiative
// ties in favour of whoever was added first.
type entry struct {
	c   domain.Combatant
	seq uint64
}

// State is a copy of the tracker at one instant.
type State struct {
	Round      int                `json:"round"`
	Turn       int                `json:"turn"`
	Combatants []domain.Combatant `json:"combatants"`
}

// Store is the initiative tracker.
type Store struct {
	mu      sync.RWMutex
	clock   clockwork.Clock
	round   int
	turn    int
	nextSeq uint64
	order   []entry
	events  store.Emitter
}

// New returns a tracker at round 1 with no combatants.
func New(clock clockwork.Clock) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store{clock: clock, round: 1}
}

func (s *Store) OnChange(fn func()) func() { return s.events.OnChange(fn) }

// State returns a deep copy of the tracker.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{Round: s.round, Turn: s.turn, Combatants: s.combatantsLocked()}
}

func (s *Store) CurrentRound() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.round
}

// Combatants returns the combatants in turn order.
func (s *Store) Combatants() []domain.Combatant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.combatantsLocked()
}

// Active returns the combatant whose turn it is.
func (s *Store) Active() optional.Option[domain.Combatant] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.order) == 0 {
		return optional.None[domain.Combatant]()
	}
	return optional.Some(s.order[s.turn].c.Clone())
}

// Add places a new combatant before the first combatant that sorts after it,
// which is after every combatant with equal or higher initiative. CurrentHP
// is kept as given, clamped to [0, MaxHP], so a combatant can join downed.
func (s *Store) Add(c domain.Combatant) (domain.Combatant, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return domain.Combatant{}, domain.NewValidationError("name", "required")
	}
	if c.MaxHP < 0 {
		return domain.Combatant{}, domain.NewValidationError("maxHp", "must not be negative")
	}
	c.CurrentHP = clampHP(c.CurrentHP, c.MaxHP)
	c.ID = uuid.NewString()
	c = c.Clone()

	s.mu.Lock()
	s.nextSeq++
	s.insertLocked(entry{c: c, seq: s.nextSeq})
	s.mu.Unlock()

	s.events.Notify()
	return c.Clone(), nil
}

// Patch is a partial combatant update.
type Patch struct {
	Name       optional.Option[string]   `json:"name"`
	Initiative optional.Option[int]      `json:"initiative"`
	CurrentHP  optional.Option[int]      `json:"currentHp"`
	MaxHP      optional.Option[int]      `json:"maxHp"`
	IsPC       optional.Option[bool]     `json:"isPC"`
	Conditions optional.Option[[]string] `json:"conditions"`
}

// Update applies p to a combatant. A changed initiative moves the combatant
// to its sorted position; its original insertion order still breaks ties.
func (s *Store) Update(id string, p Patch) (domain.Combatant, error) {
	if v, ok := p.Name.Get(); ok && strings.TrimSpace(v) == "" {
		return domain.Combatant{}, domain.NewValidationError("name", "required")
	}

	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.Combatant{}, fmt.Errorf("combatant %s: %w", id, domain.ErrNotFound)
	}
	e := s.order[i]
	c := e.c
	if v, ok := p.Name.Get(); ok {
		c.Name = strings.TrimSpace(v)
	}
	if v, ok := p.MaxHP.Get(); ok {
		c.MaxHP = max(v, 0)
	}
	if v, ok := p.CurrentHP.Get(); ok {
		c.CurrentHP = v
	}
	c.CurrentHP = clampHP(c.CurrentHP, c.MaxHP)
	if v, ok := p.IsPC.Get(); ok {
		c.IsPC = v
	}
	if v, ok := p.Conditions.Get(); ok {
		c.Conditions = slices.Clone(v)
	}
	moved := false
	if v, ok := p.Initiative.Get(); ok && v != c.Initiative {
		c.Initiative = v
		moved = true
	}
	e.c = c

	if moved {
		active := s.order[s.turn].c.ID
		s.order = slices.Delete(s.order, i, i+1)
		s.insertLocked(e)
		s.turn = s.indexLocked(active)
	} else {
		s.order[i] = e
	}
	s.mu.Unlock()

	s.events.Notify()
	return c.Clone(), nil
}

// Damage lowers a combatant's HP, never below zero.
func (s *Store) Damage(id string, amount int) (domain.Combatant, error) {
	return s.adjustHP(id, -magnitude(amount))
}

// Heal raises a combatant's HP, never above its maximum.
func (s *Store) Heal(id string, amount int) (domain.Combatant, error) {
	return s.adjustHP(id, magnitude(amount))
}

func (s *Store) adjustHP(id string, delta int) (domain.Combatant, error) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.Combatant{}, fmt.Errorf("combatant %s: %w", id, domain.ErrNotFound)
	}
	c := &s.order[i].c
	c.CurrentHP = shiftHP(c.CurrentHP, delta, c.MaxHP)
	out := c.Clone()
	s.mu.Unlock()

	s.events.Notify()
	return out, nil
}

// Remove deletes a combatant. Absent ids are ignored.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.order = slices.Delete(s.order, i, i+1)
	switch {
	case len(s.order) == 0:
		s.turn = 0
	case i < s.turn:
		s.turn--
	case s.turn >= len(s.order):
		s.turn = 0
	}
	s.mu.Unlock()

	s.events.Notify()
}

// Reorder moves a combatant to index, shifting the others. Out-of-range
// indexes are clamped. The active turn stays with the same combatant.
func (s *Store) Reorder(id string, index int) error {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("combatant %s: %w", id, domain.ErrNotFound)
	}
	active := s.order[s.turn].c.ID
	e := s.order[i]
	s.order = slices.Delete(s.order, i, i+1)
	index = min(max(index, 0), len(s.order))
	s.order = slices.Insert(s.order, index, e)
	s.turn = s.indexLocked(active)
	s.mu.Unlock()

	s.events.Notify()
	return nil
}

// SortByInitiative restores initiative order after manual reordering.
func (s *Store) SortByInitiative() {
	s.mu.Lock()
	var active string
	if len(s.order) > 0 {
		active = s.order[s.turn].c.ID
	}
	slices.SortStableFunc(s.order, compareEntries)
	if active != "" {
		s.turn = s.indexLocked(active)
	}
	s.mu.Unlock()

	s.events.Notify()
}

// Clear removes every combatant and resets the turn. The round is kept.
func (s *Store) Clear() {
	s.mu.Lock()
	s.order = nil
	s.turn = 0
	s.mu.Unlock()

	s.events.Notify()
}

func (s *Store) IncrementRound() {
	s.mu.Lock()
	s.round++
	s.mu.Unlock()
	s.events.Notify()
}

// DecrementRound lowers the round, stopping at 1.
func (s *Store) DecrementRound() {
	s.mu.Lock()
	changed := s.round > 1
	if changed {
		s.round--
	}
	s.mu.Unlock()
	if changed {
		s.events.Notify()
	}
}

// ResetRound sets the round to 1 and the turn to the top of the order.
// Combatants are kept.
func (s *Store) ResetRound() {
	s.mu.Lock()
	s.round = 1
	s.turn = 0
	s.mu.Unlock()
	s.events.Notify()
}

// NextTurn advances to the next combatant, starting a new round after the
// last one.
func (s *Store) NextTurn() {
	s.mu.Lock()
	if len(s.order) == 0 {
		s.mu.Unlock()
		return
	}
	s.turn++
	if s.turn >= len(s.order) {
		s.turn = 0
		s.round++
	}
	s.mu.Unlock()
	s.events.Notify()
}

// PreviousTurn steps back one combatant. Stepping back past the top of
// round 1 does nothing.
func (s *Store) PreviousTurn() {
	s.mu.Lock()
	if len(s.order) == 0 || (s.turn == 0 && s.round == 1) {
		s.mu.Unlock()
		return
	}
	s.turn--
	if s.turn < 0 {
		s.turn = len(s.order) - 1
		s.round--
	}
	s.mu.Unlock()
	s.events.Notify()
}

// SaveEncounter captures the current combatants and round. The result shares
// no memory with the tracker.
func (s *Store) SaveEncounter(name, campaignID string) domain.SavedEncounter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.clock.Now().UTC()
	return domain.SavedEncounter{
		Meta:       domain.Meta{CreatedAt: now, UpdatedAt: now},
		CampaignID: campaignID,
		Name:       strings.TrimSpace(name),
		Combatants: s.combatantsLocked(),
		Round:      s.round,
	}
}

// LoadEncounter replaces the combatants and round with the encounter's in
// one step. Combatant order is taken as saved. Rounds below 1 load as 1.
func (s *Store) LoadEncounter(enc domain.SavedEncounter) {
	order := make([]entry, len(enc.Combatants))
	for i, c := range enc.Combatants {
		c = c.Clone()
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		order[i] = entry{c: c}
	}

	s.mu.Lock()
	for i := range order {
		s.nextSeq++
		order[i].seq = s.nextSeq
	}
	s.order = order
	s.round = max(enc.Round, 1)
	s.turn = 0
	s.mu.Unlock()

	s.events.Notify()
}

func (s *Store) insertLocked(e entry) {
	i := slices.IndexFunc(s.order, func(have entry) bool { return compareEntries(have, e) > 0 })
	if i < 0 {
		i = len(s.order)
	}
	// Once combat is under way the turn stays with the same combatant.
	if len(s.order) > 0 && i <= s.turn && (s.turn > 0 || s.round > 1) {
		s.turn++
	}
	s.order = slices.Insert(s.order, i, e)
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.order, func(e entry) bool { return e.c.ID == id })
}

func (s *Store) combatantsLocked() []domain.Combatant {
	out := make([]domain.Combatant, len(s.order))
	for i, e := range s.order {
		out[i] = e.c.Clone()
	}
	return out
}

// compareEntries orders by initiative descending, then insertion ascending.
func compareEntries(a, b entry) int {
	if c := cmp.Compare(b.c.Initiative, a.c.Initiative); c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}

func clampHP(hp, maxHP int) int {
	return min(max(hp, 0), maxHP)
}

// shiftHP adds delta to hp within [0, maxHP] without overflowing.
func shiftHP(hp, delta, maxHP int) int {
	hp = clampHP(hp, maxHP)
	if delta > 0 {
		return hp + min(delta, maxHP-hp)
	}
	return max(hp+delta, 0)
}

// magnitude is |n|, saturating at math.MaxInt for math.MinInt.
func magnitude(n int) int {
	if n >= 0 {
		return n
	}
	if n == math.MinInt {
		return math.MaxInt
	}
	return -n
}
