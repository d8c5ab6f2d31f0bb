// Package combat keeps one live initiative tracker per user and bridges it to
// saved encounters.
package combat

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/service/encounter"
	tracker "github.com/lmdrew96/FeyForge-sub001/internal/store/combat"
	"github.com/lmdrew96/FeyForge-sub001/pkg/ctxutil"
)

const defaultIdleTTL = 12 * time.Hour

type encounterStore interface {
	Get(ctx context.Context, id string) (domain.SavedEncounter, error)
	Save(ctx context.Context, input encounter.SaveInput) (domain.SavedEncounter, error)
}

type session struct {
	store    *tracker.Store
	lastUsed time.Time
}

// Service provides live combat operations.
type Service struct {
	encounters encounterStore
	clock      clockwork.Clock
	idleTTL    time.Duration
	log        *slog.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// NewService creates a new Combat service. Trackers untouched for idleTTL are
// dropped by Sweep; zero means 12h.
func NewService(log *slog.Logger, encounters encounterStore, clock clockwork.Clock, idleTTL time.Duration) *Service {
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	return &Service{
		encounters: encounters,
		clock:      clock,
		idleTTL:    idleTTL,
		log:        log.With("service", "combat"),
		sessions:   make(map[string]*session),
	}
}

// trackerFor returns the caller's tracker, creating it on first use.
func (s *Service) trackerFor(ctx context.Context) (*tracker.Store, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = &session{store: tracker.New(s.clock)}
		s.sessions[userID] = sess
	}
	sess.lastUsed = s.clock.Now()
	return sess.store, nil
}

// Sweep drops trackers idle for longer than the TTL and returns how many.
func (s *Service) Sweep() int {
	cutoff := s.clock.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for userID, sess := range s.sessions {
		if sess.lastUsed.Before(cutoff) {
			delete(s.sessions, userID)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) error {
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			if n := s.Sweep(); n > 0 {
				s.log.InfoContext(ctx, "idle combat trackers dropped", slog.Int("count", n))
			}
		}
	}
}
