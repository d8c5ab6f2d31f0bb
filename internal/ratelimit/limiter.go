// Package ratelimit implements a sliding-window request limiter keyed by an
// arbitrary string (a user id for the generation routes).
//
// State is process-local and not durable. Idle keys are swept
// opportunistically by Allow itself, at most once per SweepInterval; there is
// no background goroutine.
package ratelimit

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

// SweepInterval bounds how often Allow scans for empty keys.
const SweepInterval = 5 * time.Minute

// Decision is the outcome of one Allow call.
type Decision struct {
	Permitted bool
	// Remaining is how many more requests the window admits after this one.
	Remaining int
	// RetryAfter is how long until the oldest recorded request leaves the
	// window. Zero when permitted.
	RetryAfter time.Duration
}

// Limiter is a sliding-window limiter. Safe for concurrent use; each key is
// read, pruned and appended under its own lock.
type Limiter struct {
	clock     clockwork.Clock
	windows   sync.Map // map[string]*window
	lastSweep atomic.Int64
}

type window struct {
	mu      sync.Mutex
	stamps  []time.Time
	span    time.Duration
	deleted bool
}

// New creates a Limiter reading time from clock.
func New(clock clockwork.Clock) *Limiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	l := &Limiter{clock: clock}
	l.lastSweep.Store(clock.Now().UnixNano())
	return l
}

// Allow records a request for key if fewer than limit requests were recorded
// in the trailing span. A denied request is not recorded.
func (l *Limiter) Allow(key string, limit int, span time.Duration) Decision {
	now := l.clock.Now()
	l.maybeSweep(now)

	for {
		v, _ := l.windows.LoadOrStore(key, &window{})
		w := v.(*window)

		w.mu.Lock()
		if w.deleted {
			// Swept between LoadOrStore and Lock; retry with a fresh window.
			w.mu.Unlock()
			continue
		}
		w.span = span
		w.prune(now)

		if len(w.stamps) >= limit {
			var retry time.Duration
			if len(w.stamps) > 0 {
				retry = w.stamps[0].Add(span).Sub(now)
			}
			w.mu.Unlock()
			return Decision{Permitted: false, Remaining: 0, RetryAfter: retry}
		}

		w.stamps = append(w.stamps, now)
		remaining := limit - len(w.stamps)
		w.mu.Unlock()
		return Decision{Permitted: true, Remaining: remaining}
	}
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	n := 0
	l.windows.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// prune drops timestamps at or before now-span. Caller holds w.mu.
func (w *window) prune(now time.Time) {
	cutoff := now.Add(-w.span)
	i := 0
	for i < len(w.stamps) && !w.stamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		w.stamps = append(w.stamps[:0], w.stamps[i:]...)
	}
}

func (l *Limiter) maybeSweep(now time.Time) {
	last := l.lastSweep.Load()
	if now.UnixNano()-last < int64(SweepInterval) {
		return
	}
	if !l.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}

	l.windows.Range(func(key, value any) bool {
		w := value.(*window)
		w.mu.Lock()
		w.prune(now)
		if len(w.stamps) == 0 {
			w.deleted = true
			l.windows.Delete(key)
		}
		w.mu.Unlock()
		return true
	})
}
