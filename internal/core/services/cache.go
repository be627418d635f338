package services

import "github.com/custodia-labs/tabfind/internal/core/domain"

// SourceCache holds the latest record collection for one source.
// It is not safe for concurrent use on its own; SearchEngineState guards it.
type SourceCache struct {
	kind     domain.SourceKind
	capacity int
	records  []domain.Record
	loaded   bool
}

// NewSourceCache creates an empty, unloaded cache with the kind's capacity.
func NewSourceCache(kind domain.SourceKind) *SourceCache {
	return &SourceCache{
		kind:     kind,
		capacity: kind.Capacity(),
	}
}

// Kind returns the cached source.
func (c *SourceCache) Kind() domain.SourceKind {
	return c.kind
}

// Replace swaps in a copy of records, keeping the first capacity entries.
func (c *SourceCache) Replace(records []domain.Record) {
	n := len(records)
	if c.capacity > 0 && n > c.capacity {
		n = c.capacity
	}
	fresh := make([]domain.Record, n)
	copy(fresh, records[:n])

	c.records = fresh
	c.loaded = true
}

// MarkUnloaded clears the loaded flag so the next query fetches again.
// Records are kept so browse still has something to show.
func (c *SourceCache) MarkUnloaded() {
	c.loaded = false
}

// Records returns the cached records. Callers must not modify the slice.
func (c *SourceCache) Records() []domain.Record {
	return c.records
}

// Loaded reports whether the cache has been filled since creation or the
// last MarkUnloaded.
func (c *SourceCache) Loaded() bool {
	return c.loaded
}

// Len returns the number of cached records.
func (c *SourceCache) Len() int {
	return len(c.records)
}
