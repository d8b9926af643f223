package application

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"spyglass/internal/config"
)

// PageEntry is the persistent pagination state for one collection
// instance: the selected page, the count last seen, and a rendered-extent
// hint that stabilizes layout across passes. Entries are owned exclusively
// by the PageStore.
type PageEntry struct {
	Page   int
	Count  int
	Extent int
}

// PageStore keeps pagination entries across traversal passes, keyed by
// collection identity. Entries are created lazily and aged out by a
// bounded LRU, so state for collections that are no longer inspected
// cannot accumulate forever.
type PageStore struct {
	pageSize int
	entries  *lru.Cache[string, *PageEntry]
}

// NewPageStore creates a store with the given page size and entry bound.
// Non-positive arguments fall back to the configured defaults.
func NewPageStore(pageSize, maxEntries int) *PageStore {
	if pageSize <= 0 {
		pageSize = config.DefaultPageSize
	}
	if maxEntries <= 0 {
		maxEntries = config.DefaultMaxPageState
	}
	cache, err := lru.New[string, *PageEntry](maxEntries)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return &PageStore{pageSize: pageSize, entries: cache}
}

// PageSize returns the configured page size
func (s *PageStore) PageSize() int { return s.pageSize }

// Len returns the number of live entries
func (s *PageStore) Len() int { return s.entries.Len() }

// GetOrCreate returns the entry for key, creating it at page 0 on first
// access. The freshly observed count is recorded and the page re-clamped
// into the valid range; a shrinking collection silently pulls the page
// back instead of surfacing an error.
func (s *PageStore) GetOrCreate(key string, count int) *PageEntry {
	e, ok := s.entries.Get(key)
	if !ok {
		e = &PageEntry{}
		s.entries.Add(key, e)
	}
	e.Count = count
	e.Page = clampPage(e.Page, count, s.pageSize)
	return e
}

// SetPage selects a page for key, clamped into the valid range for the
// count last seen. Unknown keys are ignored: a page change only makes
// sense for a collection that has been traversed.
func (s *PageStore) SetPage(key string, page int) {
	if e, ok := s.entries.Get(key); ok {
		e.Page = clampPage(page, e.Count, s.pageSize)
	}
}

// ObserveExtent records a rendered extent for key. The hint only ever
// grows, so layout does not visibly shrink between passes.
func (s *PageStore) ObserveExtent(key string, extent int) {
	if e, ok := s.entries.Get(key); ok && extent > e.Extent {
		e.Extent = extent
	}
}

// Extent returns the cached rendered-extent hint for key, or 0.
func (s *PageStore) Extent(key string) int {
	if e, ok := s.entries.Get(key); ok {
		return e.Extent
	}
	return 0
}

// MaxPage returns the last valid page index for a collection of the given
// count. An empty collection has the single page 0.
func (s *PageStore) MaxPage(count int) int {
	if count <= 0 {
		return 0
	}
	return (count - 1) / s.pageSize
}

// Window returns the half-open element index range visible for an entry.
func (s *PageStore) Window(e *PageEntry) (lo, hi int) {
	lo = e.Page * s.pageSize
	hi = lo + s.pageSize
	if hi > e.Count {
		hi = e.Count
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

func clampPage(page, count, pageSize int) int {
	maxPage := 0
	if count > 0 {
		maxPage = (count - 1) / pageSize
	}
	if page > maxPage {
		page = maxPage
	}
	if page < 0 {
		page = 0
	}
	return page
}
