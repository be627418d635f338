package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tabfind/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tabfind/internal/core/domain"
)

func newSearchService(b *memory.Browser, threshold float64) (*SearchService, *SearchEngineState) {
	engine := NewSearchEngineState(threshold)
	return NewSearchService(engine, NewFetcher(providersFor(b), defaultLimits()), 10), engine
}

func TestSearchService_LoadsEverySource(t *testing.T) {
	b := sampleBrowser()
	service, engine := newSearchService(b, 0.3)

	rs, err := service.Search(context.Background(), "github", domain.SearchOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.ModeSearch, rs.Mode)
	assert.Equal(t, "github", rs.Query)
	assert.Equal(t, []string{"GitHub"}, titles(rs.Results[domain.SourceTab]))
	assert.Equal(t, []string{"GitHub Docs"}, titles(rs.Results[domain.SourceHistory]))
	for _, kind := range domain.AllSourceKinds() {
		assert.True(t, engine.Loaded(kind), kind.String())
	}
}

func TestSearchService_LazySourcesFetchedOnce(t *testing.T) {
	b := sampleBrowser()
	service, _ := newSearchService(b, 0.3)
	ctx := context.Background()

	_, err := service.Search(ctx, "go", domain.SearchOptions{})
	require.NoError(t, err)
	_, err = service.Search(ctx, "rust", domain.SearchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, b.Fetches(domain.SourceTab))
	assert.Equal(t, 2, b.Fetches(domain.SourceBookmark))
	assert.Equal(t, 1, b.Fetches(domain.SourceHistory))
	assert.Equal(t, 1, b.Fetches(domain.SourceClosedTab))
}

func TestSearchService_EmptyQueryBrowses(t *testing.T) {
	service, _ := newSearchService(sampleBrowser(), 0.3)

	rs, err := service.Search(context.Background(), "  ", domain.SearchOptions{Limit: 1})

	require.NoError(t, err)
	assert.Equal(t, domain.ModeBrowse, rs.Mode)
	assert.Len(t, rs.Results[domain.SourceTab], 1)
	assert.Len(t, rs.Results[domain.SourceHistory], 1)
}

func TestSearchService_FiltersKindsAndLimits(t *testing.T) {
	b := sampleBrowser()
	service, _ := newSearchService(b, 0.3)

	rs, err := service.Search(context.Background(), "https", domain.SearchOptions{
		Limit: 1,
		Kinds: []domain.SourceKind{domain.SourceBookmark},
	})

	require.NoError(t, err)
	require.Len(t, rs.Results, 1)
	assert.Len(t, rs.Results[domain.SourceBookmark], 1)
	assert.Zero(t, b.Fetches(domain.SourceHistory), "unrequested sources are not loaded")
}

func TestSearchService_PartialFailure(t *testing.T) {
	b := sampleBrowser()
	b.FailFetch(domain.SourceHistory, errors.New("locked"))
	service, engine := newSearchService(b, 0.3)

	rs, err := service.Search(context.Background(), "github", domain.SearchOptions{})

	require.NoError(t, err)
	assert.NotEmpty(t, rs.Results[domain.SourceTab])
	assert.Empty(t, rs.Results[domain.SourceHistory])
	assert.False(t, engine.Loaded(domain.SourceHistory))
}

func TestSearchService_AllSourcesFail(t *testing.T) {
	b := sampleBrowser()
	for _, kind := range domain.AllSourceKinds() {
		b.FailFetch(kind, domain.ErrBrowserUnavailable)
	}
	service, _ := newSearchService(b, 0.3)

	_, err := service.Search(context.Background(), "github", domain.SearchOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProvider)
	assert.ErrorIs(t, err, domain.ErrBrowserUnavailable)
}

func TestSearchService_CancelledContext(t *testing.T) {
	service, _ := newSearchService(sampleBrowser(), 0.3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Search(ctx, "go", domain.SearchOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}
