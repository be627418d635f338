package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
	"github.com/custodia-labs/tabfind/internal/normalisers"
)

// Providers groups the browser sources. Any provider may be nil, in which
// case fetching that source yields no records.
type Providers struct {
	Tabs       driven.TabProvider
	Bookmarks  driven.BookmarkProvider
	History    driven.HistoryProvider
	ClosedTabs driven.ClosedTabProvider
}

// FetchLimits caps the lazily loaded sources.
type FetchLimits struct {
	HistoryMaxResults   int
	ClosedTabMaxResults int
}

// Fetcher pulls one source from its provider and normalises the result.
// Concurrent fetches of the same source share one provider call.
type Fetcher struct {
	providers Providers
	limits    FetchLimits
	group     singleflight.Group
}

// NewFetcher creates a fetcher.
func NewFetcher(providers Providers, limits FetchLimits) *Fetcher {
	return &Fetcher{providers: providers, limits: limits}
}

// Fetch returns the normalised records of kind.
// Provider failures are returned as *domain.ProviderError.
func (f *Fetcher) Fetch(ctx context.Context, kind domain.SourceKind) ([]domain.Record, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("fetch %d: %w", kind, domain.ErrUnsupportedKind)
	}

	v, err, _ := f.group.Do(kind.String(), func() (any, error) {
		records, err := f.fetch(ctx, kind)
		if err != nil {
			return nil, &domain.ProviderError{Kind: kind, Err: err}
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Record), nil
}

func (f *Fetcher) fetch(ctx context.Context, kind domain.SourceKind) ([]domain.Record, error) {
	switch kind {
	case domain.SourceTab:
		if f.providers.Tabs == nil {
			return nil, nil
		}
		tabs, err := f.providers.Tabs.ListOpenTabs(ctx)
		if err != nil {
			return nil, err
		}
		return normalisers.TabsFrom(tabs), nil

	case domain.SourceBookmark:
		if f.providers.Bookmarks == nil {
			return nil, nil
		}
		root, err := f.providers.Bookmarks.BookmarkTree(ctx)
		if err != nil {
			return nil, err
		}
		return normalisers.Bookmarks(root), nil

	case domain.SourceHistory:
		if f.providers.History == nil {
			return nil, nil
		}
		// The superset is fetched once and filtered locally on every keystroke.
		entries, err := f.providers.History.SearchHistory(ctx, "", f.limits.HistoryMaxResults)
		if err != nil {
			return nil, err
		}
		return normalisers.HistoryFrom(entries), nil

	case domain.SourceClosedTab:
		if f.providers.ClosedTabs == nil {
			return nil, nil
		}
		sessions, err := f.providers.ClosedTabs.ListRecentlyClosed(ctx, f.limits.ClosedTabMaxResults)
		if err != nil {
			return nil, err
		}
		return normalisers.ClosedTabsFrom(sessions), nil
	}
	return nil, domain.ErrUnsupportedKind
}
