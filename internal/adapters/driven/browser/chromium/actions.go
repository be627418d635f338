package chromium

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
	"github.com/custodia-labs/tabfind/internal/logger"
)

// Ensure Actions implements BrowserActions.
var _ driven.BrowserActions = (*Actions)(nil)

// URLOpener opens a URL outside the browser's debugging channel.
type URLOpener interface {
	Open(rawURL string) error
}

// Actions performs navigation through DevTools.
type Actions struct {
	devtools  *DevTools
	journal   driven.ClosedTabStore
	fallback  URLOpener
	searchURL string
}

// NewActions creates the action sink. journal and fallback may be nil; with a
// fallback, URLs are still opened when the debugging endpoint is down.
func NewActions(devtools *DevTools, journal driven.ClosedTabStore, fallback URLOpener, searchURL string) *Actions {
	if searchURL == "" {
		searchURL = domain.DefaultSearchURL
	}
	return &Actions{
		devtools:  devtools,
		journal:   journal,
		fallback:  fallback,
		searchURL: searchURL,
	}
}

// ActivateTab activates the target. This also raises its window.
func (a *Actions) ActivateTab(ctx context.Context, tabID string) error {
	return a.devtools.Activate(ctx, tabID)
}

// FocusWindow is satisfied by ActivateTab; the HTTP API has no window handle.
func (a *Actions) FocusWindow(_ context.Context, windowID string) error {
	if windowID != "" {
		logger.Debug("actions: window %s raised by activation", windowID)
	}
	return nil
}

// OpenURL opens rawURL in a new tab.
func (a *Actions) OpenURL(ctx context.Context, rawURL string) error {
	_, err := a.devtools.NewTab(ctx, rawURL)
	if err != nil && a.fallback != nil && errors.Is(err, domain.ErrBrowserUnavailable) {
		logger.Debug("actions: devtools unavailable, using system opener")
		return a.fallback.Open(rawURL)
	}
	return err
}

// RestoreSession pops the journal entry and reopens its URL. The entry is
// put back if the tab cannot be opened.
func (a *Actions) RestoreSession(ctx context.Context, sessionID string) error {
	if a.journal == nil {
		return fmt.Errorf("restore %s: %w", sessionID, domain.ErrNotFound)
	}
	entry, err := a.journal.Pop(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("restore %s: %w", sessionID, err)
	}
	if entry.Tab == nil || entry.Tab.URL == "" {
		return fmt.Errorf("restore %s: %w", sessionID, domain.ErrMalformedRecord)
	}

	if err := a.OpenURL(ctx, entry.Tab.URL); err != nil {
		if _, putErr := a.journal.Append(ctx, entry); putErr != nil {
			logger.Warn("actions: could not re-journal %s: %v", sessionID, putErr)
		}
		return err
	}
	return nil
}

// WebSearch opens the configured search engine for text.
func (a *Actions) WebSearch(ctx context.Context, text string) error {
	return a.OpenURL(ctx, SearchURL(a.searchURL, text))
}

// SearchURL fills template with the escaped query. Templates without a %s
// verb get the query appended.
func SearchURL(template, text string) string {
	q := url.QueryEscape(text)
	if strings.Contains(template, "%s") {
		return strings.Replace(template, "%s", q, 1)
	}
	return template + q
}
