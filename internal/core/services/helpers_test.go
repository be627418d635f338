package services

import (
	"sync"
	"time"

	"github.com/custodia-labs/tabfind/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
)

// manualClock records scheduled callbacks and fires them on demand.
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	mu      sync.Mutex
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{d: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// pending returns timers that are neither stopped nor fired.
func (c *manualClock) pending() []*manualTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*manualTimer
	for _, t := range c.timers {
		t.mu.Lock()
		if !t.stopped && !t.fired {
			out = append(out, t)
		}
		t.mu.Unlock()
	}
	return out
}

// fireAll runs every pending timer.
func (c *manualClock) fireAll() {
	for _, t := range c.pending() {
		t.mu.Lock()
		t.fired = true
		t.mu.Unlock()
		t.f()
	}
}

// syncSpawn runs background work inline.
func syncSpawn(f func()) { f() }

// deferredSpawn queues background work until flush.
type deferredSpawn struct {
	mu    sync.Mutex
	queue []func()
}

func (d *deferredSpawn) spawn(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queue = append(d.queue, f)
}

func (d *deferredSpawn) flush() {
	d.mu.Lock()
	queue := d.queue
	d.queue = nil
	d.mu.Unlock()
	for _, f := range queue {
		f()
	}
}

func (d *deferredSpawn) len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

// recordingListener captures coordinator notifications.
type recordingListener struct {
	mu      sync.Mutex
	results []domain.ResultSet
	focus   []int
}

func (l *recordingListener) OnResultsChanged(rs domain.ResultSet) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.results = append(l.results, rs)
}

func (l *recordingListener) OnFocusChanged(index int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.focus = append(l.focus, index)
}

func (l *recordingListener) last() domain.ResultSet {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.results) == 0 {
		return domain.ResultSet{}
	}
	return l.results[len(l.results)-1]
}

func (l *recordingListener) lastFocus() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.focus) == 0 {
		return domain.NoFocus
	}
	return l.focus[len(l.focus)-1]
}

func (l *recordingListener) resultCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.results)
}

func records(kind domain.SourceKind, pairs ...string) []domain.Record {
	out := make([]domain.Record, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.NewRecord(kind, pairs[i], pairs[i], pairs[i+1]))
	}
	return out
}

func titles(matches []domain.Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Record.Title
	}
	return out
}

// sampleBrowser is a browser with the records used across coordinator tests.
func sampleBrowser() *memory.Browser {
	b := memory.NewBrowser()
	b.SetTabs(
		driven.TabPayload{ID: "1", WindowID: "10", Title: "GitHub", URL: "https://github.com"},
		driven.TabPayload{ID: "2", WindowID: "10", Title: "Go", URL: "https://go.dev"},
	)
	b.SetBookmarks(driven.BookmarkNode{Children: []driven.BookmarkNode{
		{ID: "b1", Title: "Go Packages", URL: "https://pkg.go.dev"},
		{ID: "b2", Title: "Lobsters", URL: "https://lobste.rs"},
	}})
	b.SetHistory(
		driven.HistoryPayload{ID: "h1", Title: "GitHub Docs", URL: "https://docs.github.com"},
		driven.HistoryPayload{ID: "h2", Title: "Wikipedia", URL: "https://en.wikipedia.org"},
	)
	b.SetClosedTabs(
		driven.ClosedTabPayload{SessionID: "c1", Tab: &driven.TabPayload{Title: "Rust", URL: "https://rust-lang.org"}},
	)
	return b
}

func providersFor(b *memory.Browser) Providers {
	return Providers{Tabs: b, Bookmarks: b, History: b, ClosedTabs: b}
}

func defaultLimits() FetchLimits {
	return FetchLimits{
		HistoryMaxResults:   domain.DefaultHistoryMaxResults,
		ClosedTabMaxResults: domain.DefaultClosedTabMaxResults,
	}
}
