package services

import (
	"sort"
	"strings"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/fuzzy"
)

// indexedRecord caches the lower-cased searchable fields.
type indexedRecord struct {
	record domain.Record
	fields [3]string
}

// FuzzyIndex answers fuzzy queries over one record collection.
// Each record is matched on its title, URL and combined search text; the
// best field wins.
type FuzzyIndex struct {
	entries   []indexedRecord
	threshold float64
}

// NewFuzzyIndex creates an empty index.
func NewFuzzyIndex(threshold float64) *FuzzyIndex {
	return &FuzzyIndex{threshold: domain.ClampFuzziness(threshold)}
}

// Rebuild discards the index and rebuilds it from records.
func (x *FuzzyIndex) Rebuild(records []domain.Record, threshold float64) {
	entries := make([]indexedRecord, len(records))
	for i, r := range records {
		entries[i] = indexedRecord{
			record: r,
			fields: [3]string{
				strings.ToLower(r.Title),
				strings.ToLower(r.URL),
				strings.ToLower(r.SearchText),
			},
		}
	}
	x.entries = entries
	x.threshold = domain.ClampFuzziness(threshold)
}

// SetThreshold changes the threshold for subsequent searches.
func (x *FuzzyIndex) SetThreshold(threshold float64) {
	x.threshold = domain.ClampFuzziness(threshold)
}

// Threshold returns the current threshold.
func (x *FuzzyIndex) Threshold() float64 {
	return x.threshold
}

// Len returns the number of indexed records.
func (x *FuzzyIndex) Len() int {
	return len(x.entries)
}

// Search returns matching records by ascending score.
// Records with equal scores keep their source order.
func (x *FuzzyIndex) Search(query string) []domain.Match {
	pattern := fuzzy.NewPattern(query, fuzzy.Options{Threshold: x.threshold})

	var matches []domain.Match
	for _, e := range x.entries {
		best := fuzzy.Result{Score: 1}
		for _, field := range e.fields {
			if field == "" {
				continue
			}
			res := pattern.MatchLower(field)
			if res.Matched && (!best.Matched || res.Score < best.Score) {
				best = res
			}
			if best.Matched && best.Score == 0 {
				break
			}
		}
		if best.Matched {
			matches = append(matches, domain.Match{Record: e.record, Score: best.Score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score < matches[j].Score
	})
	return matches
}
