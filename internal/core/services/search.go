package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driving"
	"github.com/custodia-labs/tabfind/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService answers one-shot queries over the shared engine state.
// Tabs and bookmarks are refreshed on every call; history and closed tabs
// are fetched once and then served from the cache.
type SearchService struct {
	engine      *SearchEngineState
	fetcher     *Fetcher
	browseLimit int
}

// NewSearchService creates a new search service.
func NewSearchService(engine *SearchEngineState, fetcher *Fetcher, browseLimit int) *SearchService {
	if browseLimit <= 0 {
		browseLimit = domain.DefaultBrowseLimit
	}
	return &SearchService{
		engine:      engine,
		fetcher:     fetcher,
		browseLimit: browseLimit,
	}
}

// Search loads the requested sources and searches them.
// An empty query returns the browse view. It fails only when every
// requested source failed to load and none has cached records.
func (s *SearchService) Search(ctx context.Context, query string, opts domain.SearchOptions) (domain.ResultSet, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	if err := s.load(ctx, opts); err != nil {
		return domain.ResultSet{}, err
	}

	query = strings.TrimSpace(query)
	var rs domain.ResultSet
	if query == "" {
		limit := s.browseLimit
		if opts.Limit > 0 {
			limit = opts.Limit
		}
		rs = domain.NewResultSet("", domain.ModeBrowse)
		rs.Results = s.engine.Browse(limit)
	} else {
		rs = domain.NewResultSet(query, domain.ModeSearch)
		rs.Results = s.engine.Search(query)
	}

	for kind, matches := range rs.Results {
		if !opts.Includes(kind) {
			delete(rs.Results, kind)
			continue
		}
		if opts.Limit > 0 && len(matches) > opts.Limit {
			rs.Results[kind] = matches[:opts.Limit]
		}
	}

	logger.Debug("Returning %d results", rs.Len())
	return rs, nil
}

// load fetches the requested sources in parallel.
func (s *SearchService) load(ctx context.Context, opts domain.SearchOptions) error {
	var (
		mu       sync.Mutex
		failures []error
		wanted   int
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range domain.AllSourceKinds() {
		if !opts.Includes(kind) {
			continue
		}
		wanted++
		if kind.Lazy() && s.engine.Loaded(kind) {
			continue
		}

		g.Go(func() error {
			records, err := s.fetcher.Fetch(gctx, kind)
			if err != nil {
				logger.Warn("Loading %s failed: %v", kind, err)
				if s.engine.Len(kind) > 0 {
					return nil
				}
				mu.Lock()
				failures = append(failures, err)
				mu.Unlock()
				return nil
			}
			s.engine.Replace(kind, records)
			logger.Debug("Loaded %d %s", len(records), kind)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	if wanted > 0 && len(failures) == wanted {
		return errors.Join(failures...)
	}
	return nil
}
