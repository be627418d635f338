package services

import (
	"sync"

	"github.com/custodia-labs/tabfind/internal/core/domain"
)

// SearchEngineState owns the caches, indices and threshold for every source.
// One mutex guards all of it, so a search sees either the old or the new
// collection of each source, never a mix.
type SearchEngineState struct {
	mu        sync.RWMutex
	caches    map[domain.SourceKind]*SourceCache
	indices   map[domain.SourceKind]*FuzzyIndex
	threshold float64
}

// NewSearchEngineState creates empty state for all four sources.
func NewSearchEngineState(threshold float64) *SearchEngineState {
	threshold = domain.ClampFuzziness(threshold)
	s := &SearchEngineState{
		caches:    make(map[domain.SourceKind]*SourceCache, 4),
		indices:   make(map[domain.SourceKind]*FuzzyIndex, 4),
		threshold: threshold,
	}
	for _, kind := range domain.AllSourceKinds() {
		s.caches[kind] = NewSourceCache(kind)
		s.indices[kind] = NewFuzzyIndex(threshold)
	}
	return s
}

// Replace swaps the kind's records and rebuilds its index.
func (s *SearchEngineState) Replace(kind domain.SourceKind, records []domain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cache, ok := s.caches[kind]
	if !ok {
		return
	}
	cache.Replace(records)
	s.indices[kind].Rebuild(cache.Records(), s.threshold)
}

// MarkUnloaded clears the loaded flag of a lazy source.
func (s *SearchEngineState) MarkUnloaded(kind domain.SourceKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cache, ok := s.caches[kind]; ok {
		cache.MarkUnloaded()
	}
}

// Loaded reports whether the kind has been fetched.
func (s *SearchEngineState) Loaded(kind domain.SourceKind) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cache, ok := s.caches[kind]
	return ok && cache.Loaded()
}

// Len returns the number of records cached for kind.
func (s *SearchEngineState) Len(kind domain.SourceKind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cache, ok := s.caches[kind]; ok {
		return cache.Len()
	}
	return 0
}

// SetThreshold applies the threshold to every index.
func (s *SearchEngineState) SetThreshold(threshold float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threshold = domain.ClampFuzziness(threshold)
	for _, idx := range s.indices {
		idx.SetThreshold(s.threshold)
	}
}

// Threshold returns the shared threshold.
func (s *SearchEngineState) Threshold() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.threshold
}

// Search queries every index.
func (s *SearchEngineState) Search(query string) map[domain.SourceKind][]domain.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.SourceKind][]domain.Match, len(s.indices))
	for kind, idx := range s.indices {
		out[kind] = idx.Search(query)
	}
	return out
}

// Browse returns the first limit records of every cache as zero-score matches.
func (s *SearchEngineState) Browse(limit int) map[domain.SourceKind][]domain.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.SourceKind][]domain.Match, len(s.caches))
	for kind, cache := range s.caches {
		records := cache.Records()
		if limit >= 0 && len(records) > limit {
			records = records[:limit]
		}
		matches := make([]domain.Match, len(records))
		for i, r := range records {
			matches[i] = domain.Match{Record: r}
		}
		out[kind] = matches
	}
	return out
}
