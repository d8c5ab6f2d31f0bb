// Package store holds the primitives every FeyForge state store is built on:
// a generic ordered record collection and a change emitter.
//
// A Collection is safe for concurrent use. Readers always see either the
// state before or after a mutation, never a mix, and receive copies.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

// Record is implemented by every type a Collection holds.
type Record[T any] interface {
	Identity() domain.Meta
	WithIdentity(domain.Meta) T
}

// Collection is an insertion-ordered set of records keyed by id.
type Collection[T Record[T]] struct {
	mu    sync.RWMutex
	clock clockwork.Clock
	newID func() string

	items []T
	index map[string]int
	last  time.Time
}

// Option configures a Collection.
type Option func(*config)

type config struct {
	newID func() string
}

// WithIDGenerator overrides the id generator (uuid v4 by default).
func WithIDGenerator(fn func() string) Option {
	return func(c *config) { c.newID = fn }
}

// NewCollection creates an empty collection stamping times from clock.
func NewCollection[T Record[T]](clock clockwork.Clock, opts ...Option) *Collection[T] {
	cfg := config{newID: uuid.NewString}
	for _, o := range opts {
		o(&cfg)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Collection[T]{
		clock: clock,
		newID: cfg.newID,
		index: make(map[string]int),
	}
}

// stamp returns a timestamp strictly after every timestamp handed out or
// loaded so far. Must be called with mu held for writing.
func (c *Collection[T]) stamp() time.Time {
	now := c.clock.Now().UTC()
	if !now.After(c.last) {
		now = c.last.Add(time.Nanosecond)
	}
	c.last = now
	return now
}

// Create assigns a fresh id and timestamps to rec, appends it and returns
// the stored record.
func (c *Collection[T]) Create(rec T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.newID()
	for _, taken := c.index[id]; taken; _, taken = c.index[id] {
		id = c.newID()
	}
	now := c.stamp()
	rec = rec.WithIdentity(domain.Meta{ID: id, CreatedAt: now, UpdatedAt: now})
	c.append(rec)
	return rec
}

// Insert stores rec under its own id, stamping fresh timestamps. If the id is
// already present the existing record is returned with false and nothing
// changes.
func (c *Collection[T]) Insert(rec T) (T, bool) {
	id := rec.Identity().ID
	if id == "" {
		panic("store: Insert requires a record id")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index[id]; ok {
		return c.items[i], false
	}
	now := c.stamp()
	rec = rec.WithIdentity(domain.Meta{ID: id, CreatedAt: now, UpdatedAt: now})
	c.append(rec)
	return rec, true
}

// Update applies fn to the record with the given id and stamps UpdatedAt.
// fn cannot change the record's identity. Returns domain.ErrNotFound if the
// id is absent.
func (c *Collection[T]) Update(id string, fn func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}
	meta := c.items[i].Identity()
	meta.UpdatedAt = c.stamp()
	updated := fn(c.items[i]).WithIdentity(meta)
	c.items[i] = updated
	return updated, nil
}

// Put stores rec exactly as given, replacing a record with the same id in
// place or appending it. Used when an authoritative copy (a server response
// or a persisted snapshot) must be kept verbatim.
func (c *Collection[T]) Put(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.observe(rec.Identity())
	if i, ok := c.index[rec.Identity().ID]; ok {
		c.items[i] = rec
		return
	}
	c.append(rec)
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op; the result reports whether anything was removed.
func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.reindex()
	return true
}

// DeleteFunc removes every record for which match returns true and returns
// how many were removed.
func (c *Collection[T]) DeleteFunc(match func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	removed := 0
	for _, rec := range c.items {
		if match(rec) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	clear(c.items[len(kept):])
	c.items = kept
	if removed > 0 {
		c.reindex()
	}
	return removed
}

// Load replaces the whole content with items, keeping the first record of
// any duplicated id.
func (c *Collection[T]) Load(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]T, 0, len(items))
	c.index = make(map[string]int, len(items))
	for _, rec := range items {
		if _, dup := c.index[rec.Identity().ID]; dup {
			continue
		}
		c.observe(rec.Identity())
		c.append(rec)
	}
}

// Clear removes every record.
func (c *Collection[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.index = make(map[string]int)
}

// All returns a copy of every record in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) optional.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i, ok := c.index[id]; ok {
		return optional.Some(c.items[i])
	}
	return optional.None[T]()
}

// Has reports whether id is present.
func (c *Collection[T]) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.index[id]
	return ok
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

func (c *Collection[T]) append(rec T) {
	c.index[rec.Identity().ID] = len(c.items)
	c.items = append(c.items, rec)
}

func (c *Collection[T]) reindex() {
	c.index = make(map[string]int, len(c.items))
	for i, rec := range c.items {
		c.index[rec.Identity().ID] = i
	}
}

func (c *Collection[T]) observe(m domain.Meta) {
	if m.UpdatedAt.After(c.last) {
		c.last = m.UpdatedAt
	}
}
