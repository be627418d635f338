package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
)

// Ensure Browser implements the provider and action interfaces.
var (
	_ driven.TabProvider       = (*Browser)(nil)
	_ driven.BookmarkProvider  = (*Browser)(nil)
	_ driven.HistoryProvider   = (*Browser)(nil)
	_ driven.ClosedTabProvider = (*Browser)(nil)
	_ driven.BrowserActions    = (*Browser)(nil)
)

// Action is one call recorded by Browser.
type Action struct {
	Name string
	Arg  string
}

// Browser is an in-memory browser. It serves canned records, counts fetches
// per source and records every action.
type Browser struct {
	mu        sync.Mutex
	tabs      []driven.TabPayload
	bookmarks driven.BookmarkNode
	history   []driven.HistoryPayload
	closed    []driven.ClosedTabPayload

	fetchErrs map[domain.SourceKind]error
	fetches   map[domain.SourceKind]int
	actionErr error
	actions   []Action
}

// NewBrowser creates an empty in-memory browser.
func NewBrowser() *Browser {
	return &Browser{
		fetchErrs: make(map[domain.SourceKind]error),
		fetches:   make(map[domain.SourceKind]int),
	}
}

// SetTabs replaces the open tabs.
func (b *Browser) SetTabs(tabs ...driven.TabPayload) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tabs = tabs
}

// SetBookmarks replaces the bookmark tree.
func (b *Browser) SetBookmarks(root driven.BookmarkNode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bookmarks = root
}

// SetHistory replaces the history, most recent first.
func (b *Browser) SetHistory(entries ...driven.HistoryPayload) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history = entries
}

// SetClosedTabs replaces the recently closed sessions, most recent first.
func (b *Browser) SetClosedTabs(sessions ...driven.ClosedTabPayload) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = sessions
}

// FailFetch makes fetches of kind return err. A nil err clears the failure.
func (b *Browser) FailFetch(kind domain.SourceKind, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err == nil {
		delete(b.fetchErrs, kind)
		return
	}
	b.fetchErrs[kind] = err
}

// FailActions makes every action return err.
func (b *Browser) FailActions(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.actionErr = err
}

// Fetches returns how many times kind was fetched.
func (b *Browser) Fetches(kind domain.SourceKind) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fetches[kind]
}

// Actions returns the recorded actions in call order.
func (b *Browser) Actions() []Action {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Action, len(b.actions))
	copy(out, b.actions)
	return out
}

// ListOpenTabs returns the open tabs.
func (b *Browser) ListOpenTabs(_ context.Context) ([]driven.TabPayload, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.fetch(domain.SourceTab); err != nil {
		return nil, err
	}
	out := make([]driven.TabPayload, len(b.tabs))
	copy(out, b.tabs)
	return out, nil
}

// BookmarkTree returns the bookmark tree.
func (b *Browser) BookmarkTree(_ context.Context) (driven.BookmarkNode, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.fetch(domain.SourceBookmark); err != nil {
		return driven.BookmarkNode{}, err
	}
	return b.bookmarks, nil
}

// SearchHistory returns up to maxResults entries whose title or URL contains text.
func (b *Browser) SearchHistory(_ context.Context, text string, maxResults int) ([]driven.HistoryPayload, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.fetch(domain.SourceHistory); err != nil {
		return nil, err
	}

	text = strings.ToLower(text)
	var out []driven.HistoryPayload
	for _, h := range b.history {
		if maxResults > 0 && len(out) >= maxResults {
			break
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(h.Title), text) &&
			!strings.Contains(strings.ToLower(h.URL), text) {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

// ListRecentlyClosed returns up to maxResults sessions.
func (b *Browser) ListRecentlyClosed(_ context.Context, maxResults int) ([]driven.ClosedTabPayload, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.fetch(domain.SourceClosedTab); err != nil {
		return nil, err
	}
	n := len(b.closed)
	if maxResults > 0 && maxResults < n {
		n = maxResults
	}
	out := make([]driven.ClosedTabPayload, n)
	copy(out, b.closed[:n])
	return out, nil
}

// ActivateTab records the call.
func (b *Browser) ActivateTab(_ context.Context, tabID string) error {
	return b.record("activate_tab", tabID)
}

// FocusWindow records the call.
func (b *Browser) FocusWindow(_ context.Context, windowID string) error {
	return b.record("focus_window", windowID)
}

// OpenURL records the call.
func (b *Browser) OpenURL(_ context.Context, rawURL string) error {
	return b.record("open_url", rawURL)
}

// RestoreSession records the call.
func (b *Browser) RestoreSession(_ context.Context, sessionID string) error {
	return b.record("restore_session", sessionID)
}

// WebSearch records the call.
func (b *Browser) WebSearch(_ context.Context, text string) error {
	return b.record("web_search", text)
}

// fetch must be called with mu held.
func (b *Browser) fetch(kind domain.SourceKind) error {
	b.fetches[kind]++
	return b.fetchErrs[kind]
}

func (b *Browser) record(name, arg string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.actionErr != nil {
		return b.actionErr
	}
	b.actions = append(b.actions, Action{Name: name, Arg: arg})
	return nil
}
