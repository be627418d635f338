package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driving"
	"github.com/custodia-labs/tabfind/internal/logger"
)

// Ensure QueryCoordinator implements the interface.
var _ driving.QueryCoordinator = (*QueryCoordinator)(nil)

// CoordinatorState is the phase of the query pipeline.
type CoordinatorState int

const (
	// StateIdle means nothing has been displayed yet.
	StateIdle CoordinatorState = iota
	// StatePendingDebounce means a keystroke is waiting for the timer.
	StatePendingDebounce
	// StateExecuting means a query is being evaluated.
	StateExecuting
	// StateDisplayed means a result set is on screen.
	StateDisplayed
)

// String returns the state name.
func (s CoordinatorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePendingDebounce:
		return "pending_debounce"
	case StateExecuting:
		return "executing"
	case StateDisplayed:
		return "displayed"
	default:
		return "unknown"
	}
}

// CoordinatorConfig holds the tunables read from settings.
type CoordinatorConfig struct {
	Debounce    time.Duration
	BrowseLimit int
}

// CoordinatorOption configures a QueryCoordinator.
type CoordinatorOption func(*QueryCoordinator)

// WithClock replaces the clock used for the debounce timer.
func WithClock(clock Clock) CoordinatorOption {
	return func(c *QueryCoordinator) { c.clock = clock }
}

// WithSpawner replaces how background fetches are started.
// Passing a function that calls f directly makes fetches synchronous.
func WithSpawner(spawn func(f func())) CoordinatorOption {
	return func(c *QueryCoordinator) { c.spawn = spawn }
}

// WithListener sets the initial results listener.
func WithListener(l driving.ResultsListener) CoordinatorOption {
	return func(c *QueryCoordinator) { c.listener = l }
}

// QueryCoordinator turns keystrokes into displayed result sets.
//
// Keystrokes restart a single debounce timer; the query evaluated is the
// text at fire time. Lazy sources are fetched in the background the first
// time a non-empty query needs them, and every completed fetch re-runs the
// displayed query. Listener callbacks and fetches are started only after
// the internal lock is released.
type QueryCoordinator struct {
	engine   *SearchEngineState
	fetcher  *Fetcher
	actions  driving.ResultActionService
	settings driving.SettingsService
	config   CoordinatorConfig

	clock Clock
	spawn func(f func())

	mu         sync.Mutex
	ctx        context.Context
	listener   driving.ResultsListener
	phase      CoordinatorState
	text       string
	timer      Timer
	timerGen   uint64
	generation uint64
	results    domain.ResultSet
	nav        domain.NavigationState
	inFlight   map[domain.SourceKind]bool
	closed     bool
}

// NewQueryCoordinator creates a coordinator. The settings service is
// optional; without it CommitThreshold only applies the value.
func NewQueryCoordinator(
	engine *SearchEngineState,
	fetcher *Fetcher,
	actions driving.ResultActionService,
	settings driving.SettingsService,
	config CoordinatorConfig,
	opts ...CoordinatorOption,
) *QueryCoordinator {
	if config.BrowseLimit <= 0 {
		config.BrowseLimit = domain.DefaultBrowseLimit
	}
	c := &QueryCoordinator{
		engine:   engine,
		fetcher:  fetcher,
		actions:  actions,
		settings: settings,
		config:   config,
		clock:    realClock{},
		spawn:    goSpawn,
		ctx:      context.Background(),
		results:  domain.NewResultSet("", domain.ModeBrowse),
		nav:      domain.NewNavigationState(),
		inFlight: make(map[domain.SourceKind]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetListener replaces the results listener.
func (c *QueryCoordinator) SetListener(l driving.ResultsListener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = l
}

// Start loads tabs and bookmarks and displays the browse view.
// The context also bounds every later background fetch.
func (c *QueryCoordinator) Start(ctx context.Context) error {
	logger.Section("Coordinator Start")

	c.mu.Lock()
	c.ctx = ctx
	c.mu.Unlock()

	for _, kind := range domain.AllSourceKinds() {
		if kind.Lazy() {
			c.engine.MarkUnloaded(kind)
			continue
		}
		records, err := c.fetcher.Fetch(ctx, kind)
		if err != nil {
			logger.Error("Initial %s fetch failed: %v", kind, err)
			continue
		}
		c.engine.Replace(kind, records)
		logger.Debug("Loaded %d %s", len(records), kind)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	effects := c.display(false)
	c.mu.Unlock()
	c.run(effects)
	return nil
}

// Keystroke records the input text and restarts the debounce timer.
func (c *QueryCoordinator) Keystroke(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.text = text
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timerGen++
	gen := c.timerGen
	c.phase = StatePendingDebounce
	c.timer = c.clock.AfterFunc(c.config.Debounce, func() { c.fire(gen) })
}

// fire runs when the debounce timer elapses. A timer superseded after it
// already fired carries a stale generation and does nothing.
func (c *QueryCoordinator) fire(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.timerGen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	effects := c.execute()
	c.mu.Unlock()
	c.run(effects)
}

// execute evaluates the current text. Must be called with mu held.
func (c *QueryCoordinator) execute() []func() {
	c.phase = StateExecuting
	query := strings.TrimSpace(c.text)

	var fetch []domain.SourceKind
	for _, kind := range domain.AllSourceKinds() {
		loaded := c.engine.Loaded(kind)
		switch {
		case query == "" && (!kind.Lazy() || loaded):
			// Browse refreshes eager sources always and lazy ones once loaded.
			fetch = append(fetch, kind)
		case query != "" && kind.Lazy() && !loaded:
			fetch = append(fetch, kind)
		}
	}

	effects := c.display(false)
	return append(effects, c.startFetches(fetch)...)
}

// display computes and publishes the result set for the current text.
// With keepFocus the focused row survives when it is still in range.
// Must be called with mu held.
func (c *QueryCoordinator) display(keepFocus bool) []func() {
	query := strings.TrimSpace(c.text)

	var rs domain.ResultSet
	if query == "" {
		rs = domain.NewResultSet("", domain.ModeBrowse)
		rs.Results = c.engine.Browse(c.config.BrowseLimit)
	} else {
		rs = domain.NewResultSet(query, domain.ModeSearch)
		rs.Results = c.engine.Search(query)
	}
	c.generation++
	rs.Generation = c.generation
	c.results = rs

	if !keepFocus || c.nav.Focused >= rs.Len() || !c.nav.HasFocus() {
		c.nav.SelectFirst(rs.Len())
	}
	c.phase = StateDisplayed

	logger.Debug("Displaying %s %q: %d results (generation %d)", rs.Mode, rs.Query, rs.Len(), rs.Generation)

	listener := c.listener
	focused := c.nav.Focused
	if listener == nil {
		return nil
	}
	return []func(){
		func() { listener.OnResultsChanged(rs) },
		func() { listener.OnFocusChanged(focused) },
	}
}

// startFetches marks kinds in flight and returns the spawn effects.
// Must be called with mu held.
func (c *QueryCoordinator) startFetches(kinds []domain.SourceKind) []func() {
	var effects []func()
	ctx := c.ctx
	for _, kind := range kinds {
		if c.inFlight[kind] {
			continue
		}
		c.inFlight[kind] = true
		effects = append(effects, func() {
			c.spawn(func() { c.completeFetch(ctx, kind) })
		})
	}
	return effects
}

// completeFetch fetches kind and re-displays the active query.
func (c *QueryCoordinator) completeFetch(ctx context.Context, kind domain.SourceKind) {
	records, err := c.fetcher.Fetch(ctx, kind)

	c.mu.Lock()
	delete(c.inFlight, kind)
	if err != nil {
		c.mu.Unlock()
		// The cache keeps its previous records.
		logger.Error("Refreshing %s failed: %v", kind, err)
		return
	}

	c.engine.Replace(kind, records)
	logger.Debug("Fetched %d %s", len(records), kind)

	var effects []func()
	if !c.closed && c.phase == StateDisplayed {
		effects = c.display(true)
	}
	c.mu.Unlock()
	c.run(effects)
}

// Refresh re-fetches kind in the background, e.g. after the bookmark file
// changed or a tab was closed.
func (c *QueryCoordinator) Refresh(kind domain.SourceKind) {
	c.mu.Lock()
	if c.closed || (kind.Lazy() && !c.engine.Loaded(kind)) {
		c.mu.Unlock()
		return
	}
	effects := c.startFetches([]domain.SourceKind{kind})
	c.mu.Unlock()
	c.run(effects)
}

// SetThreshold applies a fuzziness value to every index and re-runs an
// active search immediately.
func (c *QueryCoordinator) SetThreshold(threshold float64) {
	c.mu.Lock()
	c.engine.SetThreshold(threshold)

	var effects []func()
	if !c.closed && c.phase == StateDisplayed && c.results.Mode == domain.ModeSearch {
		effects = c.display(false)
	}
	c.mu.Unlock()
	c.run(effects)
}

// CommitThreshold applies and persists a fuzziness value.
func (c *QueryCoordinator) CommitThreshold(threshold float64) error {
	threshold = domain.ClampFuzziness(threshold)
	c.SetThreshold(threshold)
	if c.settings == nil {
		return nil
	}
	if err := c.settings.SetFuzziness(threshold); err != nil {
		logger.Error("Saving fuzziness failed: %v", err)
		return fmt.Errorf("commit threshold: %w", err)
	}
	return nil
}

// Threshold returns the fuzziness in effect.
func (c *QueryCoordinator) Threshold() float64 {
	return c.engine.Threshold()
}

// Advance moves focus down, wrapping to the first row.
func (c *QueryCoordinator) Advance() {
	c.moveFocus((*domain.NavigationState).Advance)
}

// Retreat moves focus up, wrapping to the last row.
func (c *QueryCoordinator) Retreat() {
	c.moveFocus((*domain.NavigationState).Retreat)
}

func (c *QueryCoordinator) moveFocus(move func(*domain.NavigationState, int)) {
	c.mu.Lock()
	move(&c.nav, c.results.Len())
	focused := c.nav.Focused
	listener := c.listener
	c.mu.Unlock()

	if listener != nil {
		listener.OnFocusChanged(focused)
	}
}

// Focused returns the focused row index, or domain.NoFocus.
func (c *QueryCoordinator) Focused() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nav.Focused
}

// Results returns the displayed result set.
func (c *QueryCoordinator) Results() domain.ResultSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results
}

// State returns the current phase.
func (c *QueryCoordinator) State() CoordinatorState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Activate opens the focused row. Without a focused row, non-empty input
// is opened as a URL or searched for on the web.
func (c *QueryCoordinator) Activate(ctx context.Context) error {
	c.mu.Lock()
	match, ok := c.results.At(c.nav.Focused)
	text := strings.TrimSpace(c.text)
	c.mu.Unlock()

	var err error
	switch {
	case ok:
		err = c.actions.Open(ctx, match.Record)
	case text != "":
		err = c.actions.OpenText(ctx, text)
	default:
		return domain.ErrNoFocus
	}
	if err != nil {
		logger.Error("Activation failed: %v", err)
	}
	return err
}

// CopyFocusedURL copies the focused row's URL to the clipboard.
func (c *QueryCoordinator) CopyFocusedURL() error {
	c.mu.Lock()
	match, ok := c.results.At(c.nav.Focused)
	c.mu.Unlock()

	if !ok {
		return domain.ErrNoFocus
	}
	return c.actions.CopyURL(match.Record)
}

// Close cancels the pending debounce timer. Later keystrokes are ignored.
func (c *QueryCoordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.timerGen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *QueryCoordinator) run(effects []func()) {
	for _, f := range effects {
		f()
	}
}
