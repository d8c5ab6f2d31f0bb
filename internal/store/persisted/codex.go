package persisted

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/internal/store"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

type codexSnapshot struct {
	Bookmarks []domain.Bookmark `json:"bookmarks"`
}

// CodexStore keeps bookmarks into the rules catalog plus the browser's
// search query and category filter. Only bookmarks are persisted.
type CodexStore struct {
	mu        sync.RWMutex
	bookmarks *store.Collection[domain.Bookmark]
	query     string
	category  optional.Option[domain.CodexCategory]
	events    store.Emitter
	persist   persister[codexSnapshot]
	log       *slog.Logger
}

// NewCodex rehydrates bookmarks from storage or seed.
func NewCodex(log *slog.Logger, storage Storage, clock clockwork.Clock, seed Seed) *CodexStore {
	log = log.With("store", "codex")
	s := &CodexStore{
		bookmarks: store.NewCollection[domain.Bookmark](clock),
		persist:   persister[codexSnapshot]{storage: storage, key: codexKey, log: log},
		log:       log,
	}
	snap, ok := s.persist.load()
	if !ok {
		snap = codexSnapshot{Bookmarks: seed.Bookmarks}
	}
	s.bookmarks.Load(snap.Bookmarks)
	return s
}

func (s *CodexStore) OnChange(fn func()) func() { return s.events.OnChange(fn) }

// AddBookmark bookmarks a catalog entry. When b.ID is empty it is derived
// from category and slug. Adding an entry that is already bookmarked changes
// nothing and returns the existing bookmark.
func (s *CodexStore) AddBookmark(b domain.Bookmark) (domain.Bookmark, error) {
	if !b.Category.IsValid() {
		return domain.Bookmark{}, domain.NewValidationError("category", "unknown codex category")
	}
	if strings.TrimSpace(b.Slug) == "" {
		return domain.Bookmark{}, domain.NewValidationError("slug", "required")
	}
	if b.ID == "" {
		b.ID = domain.BookmarkID(b.Category, b.Slug)
	}

	s.mu.Lock()
	stored, added := s.bookmarks.Insert(b)
	if added {
		stored, _ = s.bookmarks.Update(stored.ID, func(bm domain.Bookmark) domain.Bookmark {
			bm.AddedAt = bm.CreatedAt
			return bm
		})
		s.saveLocked()
	}
	s.mu.Unlock()

	if added {
		s.events.Notify()
	}
	return stored, nil
}

// RemoveBookmark deletes a bookmark. Absent ids are ignored.
func (s *CodexStore) RemoveBookmark(id string) {
	s.mu.Lock()
	removed := s.bookmarks.Delete(id)
	if removed {
		s.saveLocked()
	}
	s.mu.Unlock()

	if removed {
		s.events.Notify()
	}
}

// ClearBookmarks removes every bookmark.
func (s *CodexStore) ClearBookmarks() {
	s.mu.Lock()
	s.bookmarks.Clear()
	s.saveLocked()
	s.mu.Unlock()

	s.events.Notify()
}

func (s *CodexStore) IsBookmarked(id string) bool { return s.bookmarks.Has(id) }

func (s *CodexStore) Bookmarks() []domain.Bookmark { return s.bookmarks.All() }

// ByCategory returns the bookmarks in one category.
func (s *CodexStore) ByCategory(c domain.CodexCategory) []domain.Bookmark {
	var out []domain.Bookmark
	for _, b := range s.bookmarks.All() {
		if b.Category == c {
			out = append(out, b)
		}
	}
	return out
}

func (s *CodexStore) SetSearchQuery(q string) {
	s.mu.Lock()
	s.query = q
	s.mu.Unlock()
	s.events.Notify()
}

func (s *CodexStore) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// SetActiveCategory sets the category filter; None shows every category.
func (s *CodexStore) SetActiveCategory(c optional.Option[domain.CodexCategory]) {
	s.mu.Lock()
	s.category = c
	s.mu.Unlock()
	s.events.Notify()
}

func (s *CodexStore) ActiveCategory() optional.Option[domain.CodexCategory] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.category
}

// Search returns bookmarks in the active category whose name or slug contains
// the search query, case-insensitively.
func (s *CodexStore) Search() []domain.Bookmark {
	s.mu.RLock()
	query := strings.ToLower(strings.TrimSpace(s.query))
	category, filtered := s.category.Get()
	s.mu.RUnlock()

	var out []domain.Bookmark
	for _, b := range s.bookmarks.All() {
		if filtered && b.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(b.Name), query) &&
			!strings.Contains(strings.ToLower(b.Slug), query) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (s *CodexStore) saveLocked() {
	s.persist.save(codexSnapshot{Bookmarks: s.bookmarks.All()})
}
