package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tabfind/internal/core/domain"
)

func TestSearchEngineState_ReplaceRebuildsIndex(t *testing.T) {
	state := NewSearchEngineState(0.3)
	assert.False(t, state.Loaded(domain.SourceTab))

	state.Replace(domain.SourceTab, records(domain.SourceTab, "GitHub", "https://github.com"))

	assert.True(t, state.Loaded(domain.SourceTab))
	assert.Equal(t, 1, state.Len(domain.SourceTab))
	assert.Len(t, state.Search("github")[domain.SourceTab], 1)
	assert.Empty(t, state.Search("github")[domain.SourceBookmark])
}

func TestSearchEngineState_SearchReturnsEveryKind(t *testing.T) {
	state := NewSearchEngineState(0.3)

	results := state.Search("x")

	for _, kind := range domain.AllSourceKinds() {
		_, ok := results[kind]
		assert.True(t, ok, kind.String())
	}
}

func TestSearchEngineState_Browse(t *testing.T) {
	state := NewSearchEngineState(0.3)
	many := make([]string, 0, 30)
	for i := 0; i < 15; i++ {
		many = append(many, string(rune('a'+i)), "https://example.com")
	}
	state.Replace(domain.SourceBookmark, records(domain.SourceBookmark, many...))
	state.Replace(domain.SourceTab, records(domain.SourceTab, "only", "https://only"))

	browse := state.Browse(10)

	require.Len(t, browse[domain.SourceBookmark], 10)
	assert.Equal(t, "a", browse[domain.SourceBookmark][0].Record.Title)
	assert.Len(t, browse[domain.SourceTab], 1)
	assert.Empty(t, browse[domain.SourceHistory])
	assert.Zero(t, browse[domain.SourceTab][0].Score)
}

func TestSearchEngineState_SetThresholdAppliesToAll(t *testing.T) {
	state := NewSearchEngineState(0)
	for _, kind := range domain.AllSourceKinds() {
		state.Replace(kind, records(kind, "GitHub", "https://github.com"))
	}

	for _, matches := range state.Search("gethub") {
		assert.Empty(t, matches)
	}

	state.SetThreshold(0.3)
	assert.Equal(t, 0.3, state.Threshold())
	for kind, matches := range state.Search("gethub") {
		assert.Len(t, matches, 1, kind.String())
	}
}

func TestSearchEngineState_MarkUnloaded(t *testing.T) {
	state := NewSearchEngineState(0.3)
	state.Replace(domain.SourceHistory, records(domain.SourceHistory, "a", "https://a"))

	state.MarkUnloaded(domain.SourceHistory)

	assert.False(t, state.Loaded(domain.SourceHistory))
	assert.Equal(t, 1, state.Len(domain.SourceHistory))
}

func TestSearchEngineState_ConcurrentReplaceAndSearch(t *testing.T) {
	state := NewSearchEngineState(0.3)
	oldSet := records(domain.SourceTab, "old one", "https://old/1", "old two", "https://old/2")
	newSet := records(domain.SourceTab, "new one", "https://new/1", "new two", "https://new/2", "new three", "https://new/3")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				state.Replace(domain.SourceTab, oldSet)
			} else {
				state.Replace(domain.SourceTab, newSet)
			}
		}()
		go func() {
			defer wg.Done()
			matches := state.Search("https")[domain.SourceTab]
			// Either the whole old set or the whole new set.
			assert.Contains(t, []int{0, 2, 3}, len(matches))
		}()
	}
	wg.Wait()
}
