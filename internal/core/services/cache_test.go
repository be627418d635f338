package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tabfind/internal/core/domain"
)

func TestSourceCache_Replace(t *testing.T) {
	cache := NewSourceCache(domain.SourceTab)
	assert.False(t, cache.Loaded())
	assert.Zero(t, cache.Len())

	input := records(domain.SourceTab, "a", "https://a", "b", "https://b")
	cache.Replace(input)

	assert.True(t, cache.Loaded())
	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, domain.SourceTab, cache.Kind())

	// The cache owns a copy.
	input[0].Title = "mutated"
	assert.Equal(t, "a", cache.Records()[0].Title)
}

func TestSourceCache_ReplaceEmpty(t *testing.T) {
	cache := NewSourceCache(domain.SourceBookmark)
	cache.Replace(records(domain.SourceBookmark, "a", "https://a"))

	cache.Replace(nil)

	assert.True(t, cache.Loaded())
	assert.Zero(t, cache.Len())
}

func TestSourceCache_CapacityTruncatesKeepingOrder(t *testing.T) {
	input := make([]domain.Record, 6000)
	for i := range input {
		input[i] = domain.NewRecord(domain.SourceHistory, fmt.Sprint(i), fmt.Sprintf("page %d", i), "")
	}

	cache := NewSourceCache(domain.SourceHistory)
	cache.Replace(input)

	require.Equal(t, domain.HistoryCapacity, cache.Len())
	got := cache.Records()
	assert.Equal(t, "0", got[0].ID)
	assert.Equal(t, "4999", got[len(got)-1].ID)
}

func TestSourceCache_ClosedTabCapacity(t *testing.T) {
	input := make([]domain.Record, 700)
	for i := range input {
		input[i] = domain.NewRecord(domain.SourceClosedTab, fmt.Sprint(i), "t", "")
	}

	cache := NewSourceCache(domain.SourceClosedTab)
	cache.Replace(input)

	assert.Equal(t, domain.ClosedTabCapacity, cache.Len())
}

func TestSourceCache_UncappedKinds(t *testing.T) {
	input := make([]domain.Record, 7000)
	for i := range input {
		input[i] = domain.NewRecord(domain.SourceBookmark, fmt.Sprint(i), "b", "")
	}

	cache := NewSourceCache(domain.SourceBookmark)
	cache.Replace(input)

	assert.Equal(t, 7000, cache.Len())
}

func TestSourceCache_MarkUnloadedKeepsRecords(t *testing.T) {
	cache := NewSourceCache(domain.SourceHistory)
	cache.Replace(records(domain.SourceHistory, "a", "https://a"))

	cache.MarkUnloaded()

	assert.False(t, cache.Loaded())
	assert.Equal(t, 1, cache.Len())
}
