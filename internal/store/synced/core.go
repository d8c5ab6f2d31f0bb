// Package synced implements stores mirrored from the remote CRUD service:
// campaigns, world locations, DM conversations and saved encounters.
//
// Each store loads lazily (Initialize fetches once, InitializeByCampaign
// always fetches) and writes through: the remote call runs first, and only
// the record it returns is applied locally. A failed call leaves the snapshot
// untouched, records a message readable through Err, and is returned to the
// caller. Two racing writes are applied in completion order; there is no
// version check.
package synced

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/store"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

// Status is the load state of a store.
type Status int

const (
	StatusUninitialized Status = iota
	StatusLoading
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Identity reports the signed-in user. Stores refuse to write without one.
type Identity interface {
	CurrentUser(ctx context.Context) optional.Option[domain.User]
}

type core[T store.Record[T]] struct {
	name  string
	log   *slog.Logger
	ident Identity

	mu     sync.RWMutex // guards status, errMsg and the derived fields of embedding stores
	status Status
	errMsg string

	items  *store.Collection[T]
	events store.Emitter
	flight singleflight.Group
}

func newCore[T store.Record[T]](name string, log *slog.Logger, ident Identity, clock clockwork.Clock) *core[T] {
	return &core[T]{
		name:  name,
		log:   log.With("store", name),
		ident: ident,
		items: store.NewCollection[T](clock),
	}
}

// Status returns the current load state.
func (c *core[T]) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Err returns the message of the last failed operation, or "" when the last
// operation succeeded.
func (c *core[T]) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errMsg
}

// All returns the snapshot in load/creation order.
func (c *core[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items.All()
}

// Get returns one record from the snapshot.
func (c *core[T]) Get(id string) optional.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items.Get(id)
}

// OnChange subscribes to snapshot and status changes.
func (c *core[T]) OnChange(fn func()) func() { return c.events.OnChange(fn) }

// fetchTimeout bounds a shared initial fetch, which no single caller's
// context controls.
const fetchTimeout = 30 * time.Second

// initialize fetches once. Concurrent callers share one fetch; once Ready
// further calls return immediately.
func (c *core[T]) initialize(ctx context.Context, fetch func(context.Context) ([]T, error), loaded func([]T)) error {
	if c.Status() == StatusReady {
		return nil
	}
	return c.shared(ctx, "initialize", func(ctx context.Context) error {
		if c.Status() == StatusReady {
			return nil
		}
		return c.load(ctx, "initialize", fetch, loaded)
	})
}

// initializeByCampaign always fetches, ignoring the Ready guard. Concurrent
// calls for the same campaign share one fetch.
func (c *core[T]) initializeByCampaign(ctx context.Context, campaignID string, fetch func(context.Context) ([]T, error), loaded func([]T)) error {
	op := "initialize campaign " + campaignID
	return c.shared(ctx, "campaign:"+campaignID, func(ctx context.Context) error {
		return c.load(ctx, op, fetch, loaded)
	})
}

// shared runs fn once per key for all concurrent callers. The fetch is
// detached from ctx: a caller that gives up gets ctx.Err() back, while the
// fetch keeps going for the others and decides the store status on its own.
func (c *core[T]) shared(ctx context.Context, key string, fn func(context.Context) error) error {
	ch := c.flight.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()
		return nil, fn(fetchCtx)
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return fmt.Errorf("%s store: %s: %w", c.name, key, ctx.Err())
	}
}

func (c *core[T]) load(ctx context.Context, op string, fetch func(context.Context) ([]T, error), loaded func([]T)) error {
	c.mu.Lock()
	c.status = StatusLoading
	c.mu.Unlock()
	c.events.Notify()

	items, err := fetch(ctx)
	if err != nil {
		c.mu.Lock()
		c.status = StatusError
		c.errMsg = message(op, err)
		c.mu.Unlock()
		c.log.WarnContext(ctx, "load failed", slog.String("op", op), slog.String("error", err.Error()))
		c.events.Notify()
		return fmt.Errorf("%s store: %w", c.name, &domain.RemoteError{Op: op, Err: err})
	}

	c.mu.Lock()
	c.items.Load(items)
	if loaded != nil {
		loaded(items)
	}
	c.status = StatusReady
	c.errMsg = ""
	c.mu.Unlock()

	c.log.DebugContext(ctx, "loaded", slog.String("op", op), slog.Int("count", len(items)))
	c.events.Notify()
	return nil
}

// write runs call against the remote and, only if it succeeds, runs apply
// under the store lock. apply must not block.
func (c *core[T]) write(ctx context.Context, op string, call func(context.Context) error, apply func()) error {
	if c.ident != nil && c.ident.CurrentUser(ctx).IsNone() {
		c.setErr(message(op, domain.ErrUnauthenticated))
		c.events.Notify()
		return fmt.Errorf("%s store: %s: %w", c.name, op, domain.ErrUnauthenticated)
	}

	if err := call(ctx); err != nil {
		c.setErr(message(op, err))
		c.log.WarnContext(ctx, "remote write failed", slog.String("op", op), slog.String("error", err.Error()))
		c.events.Notify()
		return fmt.Errorf("%s store: %w", c.name, &domain.RemoteError{Op: op, Err: err})
	}

	c.mu.Lock()
	apply()
	c.errMsg = ""
	c.mu.Unlock()
	c.events.Notify()
	return nil
}

// upsert writes through a call returning the stored record and puts that
// record into the snapshot.
func (c *core[T]) upsert(ctx context.Context, op string, call func(context.Context) (T, error)) (T, error) {
	var rec T
	err := c.write(ctx, op, func(ctx context.Context) error {
		var err error
		rec, err = call(ctx)
		return err
	}, func() { c.items.Put(rec) })
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// remove writes a delete through. A remote NotFound counts as success so
// deleting twice is harmless.
func (c *core[T]) remove(ctx context.Context, op, id string, call func(context.Context, string) error, after func()) error {
	return c.write(ctx, op, func(ctx context.Context) error {
		if err := call(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return nil
	}, func() {
		c.items.Delete(id)
		if after != nil {
			after()
		}
	})
}

func (c *core[T]) setErr(msg string) {
	c.mu.Lock()
	c.errMsg = msg
	c.mu.Unlock()
}

func message(op string, err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return op + " failed: you are signed out"
	case errors.Is(err, domain.ErrNotFound):
		return op + " failed: it no longer exists"
	}
	return op + " failed: " + err.Error()
}
