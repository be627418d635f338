package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driving"
	"github.com/custodia-labs/tabfind/internal/logger"
)

// Ensure Refresher implements the interface.
var _ driving.Refresher = (*Refresher)(nil)

// DefaultRefreshInterval is how often long-running sessions reload sources.
const DefaultRefreshInterval = 5 * time.Minute

// Refresher periodically reloads every loaded source.
// Long-running sessions such as the MCP server use it so lazily loaded
// history and closed tabs do not stay frozen at their first fetch.
type Refresher struct {
	engine   *SearchEngineState
	fetcher  *Fetcher
	interval time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewRefresher creates a refresher. A non-positive interval uses
// DefaultRefreshInterval.
func NewRefresher(engine *SearchEngineState, fetcher *Fetcher, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{
		engine:   engine,
		fetcher:  fetcher,
		interval: interval,
	}
}

// Start runs the refresh loop. It blocks until Stop is called or ctx is done.
func (r *Refresher) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = true
	r.stopCh = make(chan struct{})
	stopCh := r.stopCh
	r.wg.Add(1)
	r.mu.Unlock()
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-ticker.C:
			r.RefreshNow(ctx)
		}
	}
}

// Stop ends the loop and waits for an in-progress refresh.
func (r *Refresher) Stop() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = false
	close(r.stopCh)
	r.mu.Unlock()

	r.wg.Wait()
	return nil
}

// RefreshNow reloads every loaded source and returns how many succeeded.
// A failed source keeps its previous records.
func (r *Refresher) RefreshNow(ctx context.Context) int {
	refreshed := 0
	for _, kind := range domain.AllSourceKinds() {
		if !r.engine.Loaded(kind) {
			continue
		}
		records, err := r.fetcher.Fetch(ctx, kind)
		if err != nil {
			logger.Warn("refresher: %s: %v", kind, err)
			continue
		}
		r.engine.Replace(kind, records)
		refreshed++
	}
	logger.Debug("refresher: reloaded %d sources", refreshed)
	return refreshed
}

// Invalidate marks a lazy source stale so the next search reloads it.
// Its records stay searchable until then. Eager sources are reloaded by
// every search already.
func (r *Refresher) Invalidate(kind domain.SourceKind) {
	if !kind.Lazy() || !r.engine.Loaded(kind) {
		return
	}
	r.engine.MarkUnloaded(kind)
	logger.Debug("refresher: %s invalidated", kind)
}
